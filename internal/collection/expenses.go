package collection

import (
	"context"

	"github.com/cashtrack/cashtrack/internal/api"
)

// NewExpenses binds a Collection to the expense list/delete endpoints.
func NewExpenses(ctx context.Context, client api.Client, opts Options) *Collection[api.Expense] {
	list := func(ctx context.Context, skip, limit int) ([]api.Expense, error) {
		resp, err := client.ListExpenses(ctx, api.ListRequest{Skip: skip, Limit: limit})
		if err != nil {
			return nil, err
		}
		return resp.Reports, nil
	}
	del := func(ctx context.Context, id string) error {
		_, err := client.DeleteExpense(ctx, id)
		return err
	}
	return New(ctx, list, del, opts)
}
