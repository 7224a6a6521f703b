// Package report derives view aggregates from the fetched expense and income
// collections. Everything here is a pure function of its inputs: nothing is
// cached or persisted, callers recompute on every read.
package report

import (
	"sort"
	"time"

	"github.com/cashtrack/cashtrack/internal/api"
)

// Balance is total income minus total expenses. Empty inputs yield 0.
func Balance(incomes []api.Income, expenses []api.Expense) float64 {
	var balance float64
	for _, in := range incomes {
		balance += in.Amount
	}
	for _, ex := range expenses {
		balance -= ex.Amount
	}
	return balance
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []api.Expense) float64 {
	var total float64
	for _, ex := range expenses {
		total += ex.Amount
	}
	return total
}

// TotalIncome sums all income amounts.
func TotalIncome(incomes []api.Income) float64 {
	var total float64
	for _, in := range incomes {
		total += in.Amount
	}
	return total
}

type CategoryTotal struct {
	Category string
	Total    float64
	// Percentage of all expense spending, in percent. Stays 0 when the
	// grand total is zero, since a share of nothing is undefined.
	Percentage float64
}

// CategoryTotals groups expense amounts by category. The result is ordered by
// total descending, ties broken by category name, so repeated renders are
// stable.
func CategoryTotals(expenses []api.Expense) []CategoryTotal {
	byCategory := make(map[string]float64)
	for _, ex := range expenses {
		byCategory[ex.Category] += ex.Amount
	}

	grandTotal := TotalExpenses(expenses)

	out := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		ct := CategoryTotal{Category: category, Total: total}
		if grandTotal > 0 {
			ct.Percentage = total / grandTotal * 100
		}
		out = append(out, ct)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

type MonthBucket struct {
	Year    int
	Month   time.Month
	Income  float64
	Expense float64
}

// MonthlyTrend sums income and expense amounts per calendar month over a
// trailing window of months ending at now's month, oldest bucket first.
// Matching is by calendar month, not a rolling 30-day window.
func MonthlyTrend(incomes []api.Income, expenses []api.Expense, now time.Time, months int) []MonthBucket {
	if months <= 0 {
		return nil
	}

	type yearMonth struct {
		year  int
		month time.Month
	}

	buckets := make([]MonthBucket, months)
	index := make(map[yearMonth]int, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		buckets[i] = MonthBucket{Year: m.Year(), Month: m.Month()}
		index[yearMonth{m.Year(), m.Month()}] = i
	}

	for _, in := range incomes {
		if i, ok := index[yearMonth{in.Date.Year(), in.Date.Month()}]; ok {
			buckets[i].Income += in.Amount
		}
	}
	for _, ex := range expenses {
		if i, ok := index[yearMonth{ex.Date.Year(), ex.Date.Month()}]; ok {
			buckets[i].Expense += ex.Amount
		}
	}

	return buckets
}

type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Entry is the common shape for the combined transaction view.
type Entry struct {
	ID          string
	Kind        Kind
	Amount      float64
	Date        time.Time
	Description string
	// Category is empty for incomes.
	Category string
}

// Combined maps both collections to Entry and sorts them by date descending.
// The sort is stable; ordering among equal dates is otherwise unspecified.
func Combined(incomes []api.Income, expenses []api.Expense) []Entry {
	out := make([]Entry, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		out = append(out, Entry{
			ID:          in.ID,
			Kind:        KindIncome,
			Amount:      in.Amount,
			Date:        in.Date.Time,
			Description: in.Description,
		})
	}
	for _, ex := range expenses {
		out = append(out, Entry{
			ID:          ex.ID,
			Kind:        KindExpense,
			Amount:      ex.Amount,
			Date:        ex.Date.Time,
			Description: ex.Description,
			Category:    ex.Category,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
