package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

func TestCashflowProjection(t *testing.T) {
	txns := []types.Transaction{
		{Date: "2026-03-15", Amount: -60, Category: "Income"}, // deposit
		{Date: "2026-03-05", Amount: 40, Category: "Dining"},  // expense
	}

	report := CashflowProjection(txns, intPtr(2026), intPtr(3), 100)

	assert.Equal(t, 100.0, report.StartingBalance)
	// 100 - 40 + 60
	assert.Equal(t, 120.0, report.EndingBalance)
	assert.Equal(t, 60.0, report.LowestBalance)
	require.NotNil(t, report.LowestBalanceDate)
	assert.Equal(t, "2026-03-05", *report.LowestBalanceDate)
}

func TestCashflowProjectionNeverBelowStart(t *testing.T) {
	txns := []types.Transaction{
		{Date: "2026-03-05", Amount: -500, Category: "Income"},
	}

	report := CashflowProjection(txns, intPtr(2026), intPtr(3), 100)

	// Balance only went up, so the lowest is the starting balance and no
	// dip date is reported.
	assert.Equal(t, 100.0, report.LowestBalance)
	assert.Nil(t, report.LowestBalanceDate)
	assert.Equal(t, 600.0, report.EndingBalance)
}

func TestCashflowProjectionEmptyPeriod(t *testing.T) {
	report := CashflowProjection(nil, intPtr(2026), intPtr(3), 250)

	assert.Equal(t, 250.0, report.StartingBalance)
	assert.Equal(t, 250.0, report.EndingBalance)
	assert.Nil(t, report.LowestBalanceDate)
	assert.NotEmpty(t, report.Note)
}
