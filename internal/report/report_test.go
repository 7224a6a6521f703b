package report

import (
	"testing"
	"time"

	"github.com/cashtrack/cashtrack/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id, category string, amount float64, date time.Time) api.Expense {
	return api.Expense{ID: id, Category: category, Amount: amount, Date: api.Date{Time: date}}
}

func income(id string, amount float64, date time.Time) api.Income {
	return api.Income{ID: id, Amount: amount, Date: api.Date{Time: date}}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		incomes  []api.Income
		expenses []api.Expense
		want     float64
	}{
		{"both empty", nil, nil, 0},
		{
			"income only",
			[]api.Income{income("i1", 100, day(2026, 8, 1))},
			nil,
			100,
		},
		{
			"expenses exceed income",
			[]api.Income{income("i1", 50, day(2026, 8, 1))},
			[]api.Expense{expense("e1", "Food", 80, day(2026, 8, 2))},
			-30,
		},
		{
			"mixed",
			[]api.Income{income("i1", 3500, day(2026, 8, 1)), income("i2", 120.5, day(2026, 8, 3))},
			[]api.Expense{expense("e1", "Food", 85.5, day(2026, 8, 2)), expense("e2", "Food", 4.5, day(2026, 8, 4))},
			3530.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Balance(tt.incomes, tt.expenses), 1e-9)
		})
	}
}

func TestCategoryTotals_PartitionsSpendingExactly(t *testing.T) {
	expenses := []api.Expense{
		expense("e1", "Food", 85.5, day(2026, 8, 1)),
		expense("e2", "Transport", 20, day(2026, 8, 2)),
		expense("e3", "Food", 4.5, day(2026, 8, 3)),
		expense("e4", "Rent", 900, day(2026, 8, 4)),
	}

	totals := CategoryTotals(expenses)
	require.Len(t, totals, 3)

	var sum, pctSum float64
	for _, ct := range totals {
		sum += ct.Total
		pctSum += ct.Percentage
	}
	assert.InDelta(t, TotalExpenses(expenses), sum, 1e-9)
	assert.InDelta(t, 100, pctSum, 1e-9)

	// ordered by total descending
	assert.Equal(t, "Rent", totals[0].Category)
	assert.Equal(t, "Food", totals[1].Category)
	assert.InDelta(t, 90, totals[1].Total, 1e-9)
	assert.Equal(t, "Transport", totals[2].Category)
}

func TestCategoryTotals_ZeroGrandTotalOmitsPercentage(t *testing.T) {
	expenses := []api.Expense{
		expense("e1", "Food", 0, day(2026, 8, 1)),
	}

	totals := CategoryTotals(expenses)
	require.Len(t, totals, 1)
	assert.Zero(t, totals[0].Percentage)
}

func TestCategoryTotals_Empty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
}

func TestMonthlyTrend_BucketsByCalendarMonth(t *testing.T) {
	now := day(2026, 8, 31)
	incomes := []api.Income{
		income("i1", 3500, day(2026, 8, 1)),
		income("i2", 3500, day(2026, 7, 1)),
		income("i3", 99, day(2026, 1, 1)), // outside the window
	}
	expenses := []api.Expense{
		expense("e1", "Food", 100, day(2026, 8, 15)),
		expense("e2", "Rent", 900, day(2026, 6, 30)),
		expense("e3", "Food", 55, day(2025, 8, 15)), // same month, wrong year
	}

	trend := MonthlyTrend(incomes, expenses, now, 6)
	require.Len(t, trend, 6)

	// oldest first: Mar..Aug 2026
	assert.Equal(t, time.March, trend[0].Month)
	assert.Equal(t, 2026, trend[0].Year)
	assert.Equal(t, time.August, trend[5].Month)

	assert.InDelta(t, 3500, trend[5].Income, 1e-9)
	assert.InDelta(t, 100, trend[5].Expense, 1e-9)
	assert.InDelta(t, 3500, trend[4].Income, 1e-9)
	assert.InDelta(t, 900, trend[3].Expense, 1e-9)
	assert.Zero(t, trend[0].Income)
}

func TestMonthlyTrend_WindowCrossesYearBoundary(t *testing.T) {
	now := day(2026, 1, 15)
	incomes := []api.Income{income("i1", 10, day(2025, 12, 1))}

	trend := MonthlyTrend(incomes, nil, now, 3)
	require.Len(t, trend, 3)
	assert.Equal(t, time.November, trend[0].Month)
	assert.Equal(t, 2025, trend[0].Year)
	assert.InDelta(t, 10, trend[1].Income, 1e-9)
	assert.Equal(t, 2026, trend[2].Year)
}

func TestMonthlyTrend_NonPositiveWindow(t *testing.T) {
	assert.Nil(t, MonthlyTrend(nil, nil, day(2026, 8, 1), 0))
}

func TestCombined_SortsByDateDescending(t *testing.T) {
	incomes := []api.Income{
		income("i1", 3500, day(2026, 8, 1)),
	}
	expenses := []api.Expense{
		expense("e1", "Food", 85.5, day(2026, 8, 15)),
		expense("e2", "Food", 4.5, day(2026, 8, 14)),
	}

	entries := Combined(incomes, expenses)
	require.Len(t, entries, 3)

	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, KindExpense, entries[0].Kind)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Equal(t, "i1", entries[2].ID)
	assert.Equal(t, KindIncome, entries[2].Kind)
	assert.Empty(t, entries[2].Category)
}

func TestCombined_Empty(t *testing.T) {
	assert.Empty(t, Combined(nil, nil))
}
