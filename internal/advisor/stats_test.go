package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil)
	assert.Equal(t, Stats{}, stats)
}

func TestAnalyzeDetectsAnomaly(t *testing.T) {
	// Steady grocery spend, then one $500 outlier at the end.
	var txns []types.Transaction
	for i := 0; i < 7; i++ {
		txns = append(txns, types.Transaction{Merchant: "Whole Foods", Amount: 100, Category: "Groceries"})
	}
	txns = append(txns, types.Transaction{Merchant: "Caviar Emporium", Amount: 500, Category: "Groceries"})

	stats := Analyze(txns)

	assert.Equal(t, 8, stats.TransactionCount)
	require.Len(t, stats.RecentAnomalies, 1)
	a := stats.RecentAnomalies[0]
	assert.Equal(t, "Caviar Emporium", a.Merchant)
	assert.Equal(t, 500.0, a.Amount)
	assert.Greater(t, a.ZScore, 2.0)
	assert.Contains(t, a.Message, "Groceries")
}

func TestAnalyzeSkipsSmallCategories(t *testing.T) {
	// Two transactions are not enough to model a distribution.
	txns := []types.Transaction{
		{Merchant: "A", Amount: 10, Category: "Dining"},
		{Merchant: "B", Amount: 500, Category: "Dining"},
	}

	stats := Analyze(txns)
	assert.Empty(t, stats.RecentAnomalies)
	assert.Empty(t, stats.VolatileCategories)
}

func TestAnalyzeVolatileAndStable(t *testing.T) {
	txns := []types.Transaction{
		// Tight spread: stable.
		{Merchant: "Rent Co", Amount: 1200, Category: "Rent"},
		{Merchant: "Rent Co", Amount: 1200, Category: "Rent"},
		{Merchant: "Rent Co", Amount: 1210, Category: "Rent"},
		// Wide spread: volatile.
		{Merchant: "Delta", Amount: 50, Category: "Travel"},
		{Merchant: "Hilton", Amount: 900, Category: "Travel"},
		{Merchant: "Hertz", Amount: 120, Category: "Travel"},
	}

	stats := Analyze(txns)
	assert.Equal(t, []string{"Rent"}, stats.StableCategories)
	assert.Equal(t, []string{"Travel"}, stats.VolatileCategories)
}

func TestAnalyzeNearUniformAmountsProduceNoAnomalies(t *testing.T) {
	// Standard deviation at or below 1.0 is treated as no signal.
	txns := []types.Transaction{
		{Merchant: "Netflix", Amount: 15.99, Category: "Subscriptions"},
		{Merchant: "Netflix", Amount: 15.99, Category: "Subscriptions"},
		{Merchant: "Netflix", Amount: 16.99, Category: "Subscriptions"},
	}

	stats := Analyze(txns)
	assert.Empty(t, stats.RecentAnomalies)
}
