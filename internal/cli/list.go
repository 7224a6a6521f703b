package cli

import (
	"context"
	"fmt"

	"github.com/cashtrack/cashtrack/internal/report"
)

// List prints the combined transaction view, newest first. Per-side fetch
// errors show up as a note above whatever data is available.
func (a *App) List(ctx context.Context) error {
	if msg := a.dash.Expenses.Err(); msg != "" {
		printlnFn("expenses:", msg)
	}
	if msg := a.dash.Incomes.Err(); msg != "" {
		printlnFn("incomes:", msg)
	}

	entries := a.dash.Entries()
	if len(entries) == 0 {
		printlnFn("No transactions yet.")
		return nil
	}

	for _, e := range entries {
		printlnFn(formatEntry(e))
	}

	if a.dash.Expenses.HasMore() || a.dash.Incomes.HasMore() {
		printlnFn("Type 'more' to load older transactions.")
	}
	return nil
}

// More loads the next page of both listings.
func (a *App) More(ctx context.Context) error {
	if !a.dash.Expenses.HasMore() && !a.dash.Incomes.HasMore() {
		printlnFn("Nothing more to load.")
		return nil
	}
	_ = a.dash.Expenses.LoadMore(ctx)
	_ = a.dash.Incomes.LoadMore(ctx)
	return a.List(ctx)
}

func formatEntry(e report.Entry) string {
	sign := "+"
	if e.Kind == report.KindExpense {
		sign = "-"
	}
	label := e.Description
	if e.Category != "" {
		label = fmt.Sprintf("%s [%s]", label, e.Category)
	}
	return fmt.Sprintf("%s  %s%.2f  %s  (%s)", e.Date.Format("2006-01-02"), sign, e.Amount, label, e.ID)
}
