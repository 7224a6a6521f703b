// Package dashboard ties the expense and income collections together and
// exposes the derived aggregates the UI renders. Aggregates are recomputed
// from the collections' current items on every call.
package dashboard

import (
	"context"
	"time"

	"github.com/cashtrack/cashtrack/internal/api"
	"github.com/cashtrack/cashtrack/internal/collection"
	"github.com/cashtrack/cashtrack/internal/report"
	"golang.org/x/sync/errgroup"
)

// DefaultTrendMonths is the trailing window for the monthly trend.
const DefaultTrendMonths = 6

type Options struct {
	// PageLimit is the page size for both collections.
	PageLimit int
	// TrendMonths overrides the monthly trend window.
	TrendMonths int
	// AutoFetch triggers an initial fetch of both collections.
	AutoFetch bool
}

type Dashboard struct {
	Expenses *collection.Collection[api.Expense]
	Incomes  *collection.Collection[api.Income]

	trendMonths int
	now         func() time.Time
}

func New(ctx context.Context, client api.Client, opts Options) *Dashboard {
	months := opts.TrendMonths
	if months <= 0 {
		months = DefaultTrendMonths
	}
	colOpts := collection.Options{Limit: opts.PageLimit, AutoFetch: opts.AutoFetch}
	return &Dashboard{
		Expenses:    collection.NewExpenses(ctx, client, colOpts),
		Incomes:     collection.NewIncomes(ctx, client, colOpts),
		trendMonths: months,
		now:         time.Now,
	}
}

// RefreshAll refetches both collections concurrently and returns once both
// are done. One side failing never cancels or hides the other: each
// collection records its own error and keeps its previous items, so the
// caller can render whatever data is available and inspect Err() per side.
func (d *Dashboard) RefreshAll(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		_ = d.Expenses.Refresh(ctx)
		return nil
	})
	g.Go(func() error {
		_ = d.Incomes.Refresh(ctx)
		return nil
	})
	_ = g.Wait()
}

func (d *Dashboard) Balance() float64 {
	return report.Balance(d.Incomes.Items(), d.Expenses.Items())
}

func (d *Dashboard) TotalIncome() float64 {
	return report.TotalIncome(d.Incomes.Items())
}

func (d *Dashboard) TotalExpenses() float64 {
	return report.TotalExpenses(d.Expenses.Items())
}

func (d *Dashboard) CategoryTotals() []report.CategoryTotal {
	return report.CategoryTotals(d.Expenses.Items())
}

func (d *Dashboard) MonthlyTrend() []report.MonthBucket {
	return report.MonthlyTrend(d.Incomes.Items(), d.Expenses.Items(), d.now(), d.trendMonths)
}

// Entries is the combined transaction view, newest first.
func (d *Dashboard) Entries() []report.Entry {
	return report.Combined(d.Incomes.Items(), d.Expenses.Items())
}
