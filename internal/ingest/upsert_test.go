package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

func TestUpsertAllAddsNewTransactions(t *testing.T) {
	incoming := []types.Transaction{
		{Date: "2026-03-05", Merchant: "Whole Foods", Amount: 82.45, Category: "Groceries"},
		{Date: "2026-03-06", Merchant: "Shell", Amount: 40, Category: "Transportation"},
	}

	result := UpsertAll(nil, incoming)

	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Updated)
	require.Len(t, result.Transactions, 2)
	for _, tx := range result.Transactions {
		assert.NotEmpty(t, tx.ID)
	}
}

func TestUpsertAllReimportIsIdempotent(t *testing.T) {
	incoming := []types.Transaction{
		{Date: "2026-03-05", Merchant: "Whole Foods", Amount: 82.45, Category: "Groceries"},
	}

	first := UpsertAll(nil, incoming)
	second := UpsertAll(first.Transactions, incoming)

	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 1, second.Updated)
	require.Len(t, second.Transactions, 1)
	assert.Equal(t, first.Transactions[0].ID, second.Transactions[0].ID)
}

func TestUpsertAllUpdatesCategoryInPlace(t *testing.T) {
	existing := []types.Transaction{
		{ID: "keep-me", Date: "2026-03-05", Merchant: "Whole Foods", Amount: 82.45, Category: "Other"},
	}
	incoming := []types.Transaction{
		{Date: "2026-03-05", Merchant: "Whole Foods", Amount: 82.45, Category: "Groceries"},
	}

	result := UpsertAll(existing, incoming)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "keep-me", result.Transactions[0].ID)
	assert.Equal(t, "Groceries", result.Transactions[0].Category)

	// The input slice is untouched.
	assert.Equal(t, "Other", existing[0].Category)
}

func TestDedupe(t *testing.T) {
	txns := []types.Transaction{
		{ID: "a", Date: "2026-03-05", Merchant: "Whole Foods", Amount: 82.45},
		{ID: "b", Date: "2026-03-05", Merchant: "Whole Foods", Amount: 82.45},
		{ID: "c", Date: "2026-03-06", Merchant: "Shell", Amount: 40},
	}

	deduped, removed := Dedupe(txns)

	assert.Equal(t, 1, removed)
	require.Len(t, deduped, 2)
	assert.Equal(t, "a", deduped[0].ID)
	assert.Equal(t, "c", deduped[1].ID)
}
