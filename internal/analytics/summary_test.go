package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

func summaryFixture() []types.Transaction {
	return []types.Transaction{
		{ID: "t1", Date: "2026-03-05", Merchant: "Whole Foods", Amount: 100, Category: "Groceries"},
		{ID: "t2", Date: "2026-03-12", Merchant: "Shell", Amount: 50, Category: "Transportation"},
		{ID: "t3", Date: "2026-03-15", Merchant: "Payroll", Amount: -2000, Category: "Income"},
		{ID: "t4", Date: "2026-04-02", Merchant: "Whole Foods", Amount: 75, Category: "Groceries"},
	}
}

func TestSpendingSummaryForMonth(t *testing.T) {
	report := SpendingSummary(summaryFixture(), intPtr(2026), intPtr(3))

	assert.Equal(t, Period{Year: 2026, Month: 3}, report.Period)
	assert.Equal(t, 150.0, report.TotalSpent)
	require.NotNil(t, report.Outlier)
	assert.Equal(t, "t1", report.Outlier.ID)
	assert.Equal(t, 100.0, report.Outlier.Amount)

	// Income must not appear in category totals.
	require.Len(t, report.TopCategories, 2)
	assert.Equal(t, CategoryTotal{Category: "Groceries", Spent: 100}, report.TopCategories[0])
	assert.Equal(t, CategoryTotal{Category: "Transportation", Spent: 50}, report.TopCategories[1])

	// Month-scoped summaries carry no all-time extras.
	assert.Nil(t, report.HighestMonth)
	assert.Nil(t, report.AverageMonthlySpend)
}

func TestSpendingSummaryAllTime(t *testing.T) {
	report := SpendingSummary(summaryFixture(), nil, nil)

	assert.Equal(t, AllTime, report.Period)
	assert.Equal(t, 225.0, report.TotalSpent)

	require.NotNil(t, report.HighestMonth)
	assert.Equal(t, MonthTotal{Month: "2026-03", Amount: 150}, *report.HighestMonth)

	require.NotNil(t, report.AverageMonthlySpend)
	assert.Equal(t, 112.5, *report.AverageMonthlySpend)
}

func TestSpendingSummaryMonthOnlyIsNotAllTime(t *testing.T) {
	// A single argument scopes to a month; all-time needs both absent.
	report := SpendingSummary(summaryFixture(), nil, intPtr(4))

	assert.Equal(t, Period{Year: 2026, Month: 4}, report.Period)
	assert.Equal(t, 75.0, report.TotalSpent)
}

func TestSpendingSummaryBlankCategoryFallsBackToOther(t *testing.T) {
	txns := []types.Transaction{
		{ID: "t1", Date: "2026-03-05", Merchant: "Mystery", Amount: 30, Category: "  "},
	}
	report := SpendingSummary(txns, intPtr(2026), intPtr(3))

	require.Len(t, report.TopCategories, 1)
	assert.Equal(t, "Other", report.TopCategories[0].Category)
	require.NotNil(t, report.Outlier)
	assert.Equal(t, "Other", report.Outlier.Category)
}

func TestSpendingSummaryEmpty(t *testing.T) {
	report := SpendingSummary(nil, nil, nil)

	assert.Equal(t, 0.0, report.TotalSpent)
	assert.Nil(t, report.Outlier)
	assert.Nil(t, report.HighestMonth)
	assert.Empty(t, report.TopCategories)
}
