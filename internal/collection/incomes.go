package collection

import (
	"context"

	"github.com/cashtrack/cashtrack/internal/api"
)

// NewIncomes binds a Collection to the income list/delete endpoints.
func NewIncomes(ctx context.Context, client api.Client, opts Options) *Collection[api.Income] {
	list := func(ctx context.Context, skip, limit int) ([]api.Income, error) {
		resp, err := client.ListIncomes(ctx, api.ListRequest{Skip: skip, Limit: limit})
		if err != nil {
			return nil, err
		}
		return resp.Reports, nil
	}
	del := func(ctx context.Context, id string) error {
		_, err := client.DeleteIncome(ctx, id)
		return err
	}
	return New(ctx, list, del, opts)
}
