package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

func TestRecurringTransactions(t *testing.T) {
	stubNow(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))

	txns := []types.Transaction{
		// Three distinct months, stable amount: recurring.
		{Date: "2026-01-03", Merchant: "Netflix", Amount: 15.99, Category: "Subscriptions"},
		{Date: "2026-02-03", Merchant: "Netflix", Amount: 15.99, Category: "Subscriptions"},
		{Date: "2026-03-03", Merchant: "Netflix", Amount: 16.99, Category: "Subscriptions"},
		// Only two distinct months: not recurring.
		{Date: "2026-02-10", Merchant: "Gym", Amount: 40, Category: "Gym & Fitness"},
		{Date: "2026-03-10", Merchant: "Gym", Amount: 40, Category: "Gym & Fitness"},
		// Three months but wildly different amounts: not recurring.
		{Date: "2026-01-20", Merchant: "Amazon", Amount: 10, Category: "Shopping"},
		{Date: "2026-02-20", Merchant: "Amazon", Amount: 200, Category: "Shopping"},
		{Date: "2026-03-20", Merchant: "Amazon", Amount: 500, Category: "Shopping"},
		// Outside the trailing window: ignored entirely.
		{Date: "2025-12-03", Merchant: "Spotify", Amount: 9.99, Category: "Subscriptions"},
	}

	report := RecurringTransactions(txns, 4)

	require.Len(t, report.Recurring, 1)
	got := report.Recurring[0]
	assert.Equal(t, "Netflix", got.Merchant)
	// Median of 15.99, 15.99, 16.99; the 16.99 charge is within the 15%
	// tolerance of the median.
	assert.Equal(t, 15.99, got.EstimatedMonthly)
	assert.Equal(t, 3, got.Occurrences)
	assert.Equal(t, "Subscriptions", got.Category)
	assert.NotEmpty(t, report.Note)
}

func TestRecurringTransactionsIncomeIgnored(t *testing.T) {
	stubNow(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))

	txns := []types.Transaction{
		{Date: "2026-01-01", Merchant: "Payroll", Amount: -2500, Category: "Income"},
		{Date: "2026-02-01", Merchant: "Payroll", Amount: -2500, Category: "Income"},
		{Date: "2026-03-01", Merchant: "Payroll", Amount: -2500, Category: "Income"},
	}

	report := RecurringTransactions(txns, 4)
	assert.Empty(t, report.Recurring)
}

func TestRecurringTransactionsSortedByAmount(t *testing.T) {
	stubNow(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))

	var txns []types.Transaction
	for _, m := range []string{"2026-01-05", "2026-02-05", "2026-03-05"} {
		txns = append(txns,
			types.Transaction{Date: m, Merchant: "Rent Co", Amount: 1200, Category: "Rent"},
			types.Transaction{Date: m, Merchant: "Netflix", Amount: 15.99, Category: "Subscriptions"},
		)
	}

	report := RecurringTransactions(txns, 4)
	require.Len(t, report.Recurring, 2)
	assert.Equal(t, "Rent Co", report.Recurring[0].Merchant)
	assert.Equal(t, "Netflix", report.Recurring[1].Merchant)
}
