package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

func TestCategorySpend(t *testing.T) {
	txns := []types.Transaction{
		{Date: "2026-03-05", Merchant: "Whole Foods", Amount: 80, Category: "Groceries"},
		{Date: "2026-03-12", Merchant: "Trader Joe's", Amount: 60, Category: "groceries "},
		{Date: "2026-03-20", Merchant: "Shell", Amount: 45, Category: "Transportation"},
		{Date: "2026-03-25", Merchant: "Refund", Amount: -15, Category: "Groceries"},
	}

	report := CategorySpend(txns, " GROCERIES ", intPtr(2026), intPtr(3))

	assert.Equal(t, 140.0, report.Spent)
	assert.Equal(t, 2, report.TransactionCount)
	require.Len(t, report.TopMerchants, 2)
	assert.Equal(t, MerchantTotal{Merchant: "Whole Foods", Spent: 80}, report.TopMerchants[0])
}

func TestCategorySpendNoMatches(t *testing.T) {
	report := CategorySpend(nil, "Travel", intPtr(2026), intPtr(3))
	assert.Equal(t, 0.0, report.Spent)
	assert.Equal(t, 0, report.TransactionCount)
	assert.Empty(t, report.TopMerchants)
}

func TestTransactionDetail(t *testing.T) {
	txns := []types.Transaction{
		{ID: "t1", Date: "2026-03-05", Merchant: "Whole Foods", Amount: 80, Category: "Groceries"},
	}

	found := TransactionDetail(txns, "t1")
	require.NotNil(t, found.Transaction)
	assert.Equal(t, "Whole Foods", found.Transaction.Merchant)
	assert.Empty(t, found.Error)

	missing := TransactionDetail(txns, "nope")
	assert.Nil(t, missing.Transaction)
	assert.Equal(t, "Transaction not found", missing.Error)
}
