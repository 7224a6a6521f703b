// Package collection implements the paginated resource collection shared by
// expenses and incomes: one generic type owning the fetched page state, with
// endpoint bindings supplied per resource.
package collection

import (
	"context"
	"sync"
)

// DefaultLimit is the page size used when Options.Limit is zero.
const DefaultLimit = 10

// ListFunc fetches one page of the resource.
type ListFunc[T any] func(ctx context.Context, skip, limit int) ([]T, error)

// DeleteFunc deletes one record by id on the backend.
type DeleteFunc func(ctx context.Context, id string) error

type Options struct {
	// Limit is the page size for Fetch/LoadMore/Refresh.
	Limit int
	// AutoFetch triggers a single initial Fetch at construction time.
	// Later parameter changes never re-trigger it.
	AutoFetch bool
}

// Collection holds one paginated resource listing. The zero total count is an
// estimate (skip + fetched count), not an authoritative server total, and
// HasMore is the page-size heuristic from the last fetch.
//
// State is mutex-guarded so two collections can be refreshed concurrently,
// but completions are applied in arrival order: a stale fetch finishing after
// a newer one still overwrites (no cancellation, last write wins).
type Collection[T any] struct {
	list  ListFunc[T]
	del   DeleteFunc
	limit int

	mu         sync.Mutex
	items      []T
	loading    bool
	lastErr    string
	totalCount int
	hasMore    bool
}

func New[T any](ctx context.Context, list ListFunc[T], del DeleteFunc, opts Options) *Collection[T] {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	c := &Collection[T]{
		list:    list,
		del:     del,
		limit:   limit,
		hasMore: true,
	}
	if opts.AutoFetch {
		_ = c.Fetch(ctx, 0, limit)
	}
	return c
}

// Items returns a copy of the current records in fetch/append order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last recorded failure message, empty when none.
func (c *Collection[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// TotalCount is the running estimate skip + fetched count.
func (c *Collection[T]) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalCount
}

// HasMore reports whether the last fetched page filled the requested limit.
func (c *Collection[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Fetch retrieves one page. With skip 0 the current items are replaced
// wholesale; with skip > 0 the page is appended. On failure the message is
// recorded, existing items stay untouched, and the error is returned so
// callers may either check it or observe Err() later. No automatic retries.
func (c *Collection[T]) Fetch(ctx context.Context, skip, limit int) error {
	if limit <= 0 {
		limit = c.limit
	}

	c.mu.Lock()
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()

	page, err := c.list(ctx, skip, limit)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.lastErr = err.Error()
		return err
	}

	if skip == 0 {
		c.items = page
	} else {
		c.items = append(c.items, page...)
	}
	c.hasMore = len(page) == limit
	c.totalCount = skip + len(page)
	return nil
}

// LoadMore fetches the next page after the current items. It is a no-op when
// nothing more is available or a fetch is already in flight.
func (c *Collection[T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if !c.hasMore || c.loading {
		c.mu.Unlock()
		return nil
	}
	skip := len(c.items)
	c.mu.Unlock()

	return c.Fetch(ctx, skip, c.limit)
}

// Refresh discards all previously loaded pages and fetches the first one.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	return c.Fetch(ctx, 0, c.limit)
}

// DeleteItem deletes the record on the backend. Local items are deliberately
// NOT mutated on success: the caller owns the follow-up Refresh, so dependent
// views update from one consistent fetch. On failure the message is recorded
// and the error returned.
func (c *Collection[T]) DeleteItem(ctx context.Context, id string) error {
	if err := c.del(ctx, id); err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return err
	}
	return nil
}
