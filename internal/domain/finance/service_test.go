package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(kind Kind, category, amount string, occurred string) *Record {
	at, _ := time.Parse("2006-01-02", occurred)
	return &Record{
		Kind:       kind,
		Category:   category,
		Amount:     decimal.RequireFromString(amount),
		OccurredAt: at,
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	summary := BuildSummary(nil)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
	assert.Empty(t, summary.Monthly)
}

func TestBuildSummary_TotalsAndBalance(t *testing.T) {
	summary := BuildSummary([]*Record{
		rec(KindIncome, "production", "15000.00", "2026-03-10"),
		rec(KindIncome, "licensing", "2500.50", "2026-03-20"),
		rec(KindExpense, "equipment", "4000.00", "2026-03-12"),
		rec(KindExpense, "travel", "999.99", "2026-04-01"),
	})

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("17500.50")))
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("4999.99")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("12500.51")))
}

func TestBuildSummary_ExpenseCategories(t *testing.T) {
	summary := BuildSummary([]*Record{
		rec(KindExpense, "equipment", "100.00", "2026-01-05"),
		rec(KindExpense, "equipment", "50.00", "2026-02-05"),
		rec(KindExpense, "travel", "75.00", "2026-01-06"),
		rec(KindIncome, "production", "1000.00", "2026-01-07"),
	})

	require.Len(t, summary.ByCategory, 2)
	assert.True(t, summary.ByCategory["equipment"].Equal(decimal.RequireFromString("150.00")))
	assert.True(t, summary.ByCategory["travel"].Equal(decimal.RequireFromString("75.00")))
	// income never lands in the expense breakdown
	_, ok := summary.ByCategory["production"]
	assert.False(t, ok)
}

func TestBuildSummary_MonthlySeriesSorted(t *testing.T) {
	summary := BuildSummary([]*Record{
		rec(KindExpense, "travel", "10.00", "2026-03-01"),
		rec(KindIncome, "production", "20.00", "2026-01-15"),
		rec(KindIncome, "production", "30.00", "2026-02-01"),
		rec(KindExpense, "travel", "5.00", "2026-01-20"),
	})

	require.Len(t, summary.Monthly, 3)
	assert.Equal(t, "2026-01", summary.Monthly[0].Month)
	assert.Equal(t, "2026-02", summary.Monthly[1].Month)
	assert.Equal(t, "2026-03", summary.Monthly[2].Month)

	assert.True(t, summary.Monthly[0].Income.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, summary.Monthly[0].Expense.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, summary.Monthly[2].Income.IsZero())
}
