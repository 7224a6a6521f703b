package cli

import (
	"context"
	"fmt"
)

// Summary prints the balance and the per-category expense breakdown.
func (a *App) Summary(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Income:   %.2f", a.dash.TotalIncome()))
	printlnFn(fmt.Sprintf("Expenses: %.2f", a.dash.TotalExpenses()))
	printlnFn(fmt.Sprintf("Balance:  %.2f", a.dash.Balance()))

	totals := a.dash.CategoryTotals()
	if len(totals) == 0 {
		return nil
	}
	printlnFn("By category:")
	for _, t := range totals {
		printlnFn(fmt.Sprintf("  %-20s %10.2f  %5.1f%%", t.Category, t.Total, t.Percentage))
	}
	return nil
}

// Trend prints month-by-month income vs. spending, oldest first.
func (a *App) Trend(ctx context.Context) error {
	for _, b := range a.dash.MonthlyTrend() {
		printlnFn(fmt.Sprintf("%d-%02d  income %10.2f  expenses %10.2f", b.Year, int(b.Month), b.Income, b.Expense))
	}
	return nil
}
