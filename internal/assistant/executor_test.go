package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaymit/Personal-Finance/internal/analytics"
	"github.com/tanaymit/Personal-Finance/internal/types"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testEnv() executeEnv {
	return executeEnv{
		transactions: []types.Transaction{
			{ID: "t1", Date: "2026-03-05", Merchant: "Whole Foods", Amount: 100, Category: "Groceries"},
			{ID: "t2", Date: "2026-03-12", Merchant: "Shell", Amount: 50, Category: "Transportation"},
		},
		settings: types.Settings{DefaultBudget: 1000},
		goals: []types.Goal{
			{ID: "g1", Name: "Emergency fund", TargetAmount: 5000},
		},
	}
}

func TestExecutePlanPreservesOrder(t *testing.T) {
	plan := Plan{
		Tier: 2,
		Calls: []PlannedCall{
			{Tool: string(ToolSpendingSummary), Args: ToolArgs{Year: intPtr(2026), Month: intPtr(3)}},
			{Tool: string(ToolBudgetStatus), Args: ToolArgs{Year: intPtr(2026), Month: intPtr(3)}},
			{Tool: string(ToolUserGoals)},
		},
	}

	bundle := executePlan(context.Background(), plan, testEnv())

	require.Len(t, bundle.Calls, 3)
	assert.Equal(t, string(ToolSpendingSummary), bundle.Calls[0].Tool)
	assert.Equal(t, string(ToolBudgetStatus), bundle.Calls[1].Tool)
	assert.Equal(t, string(ToolUserGoals), bundle.Calls[2].Tool)

	summary, ok := bundle.Calls[0].Result.(analytics.SpendingReport)
	require.True(t, ok)
	assert.Equal(t, 150.0, summary.TotalSpent)

	goals, ok := bundle.Calls[2].Result.([]types.Goal)
	require.True(t, ok)
	require.Len(t, goals, 1)
	assert.Equal(t, "Emergency fund", goals[0].Name)
}

func TestExecutePlanUnknownToolIsInlineError(t *testing.T) {
	plan := Plan{
		Tier: 2,
		Calls: []PlannedCall{
			{Tool: "summon_accountant"},
			{Tool: string(ToolUserGoals)},
		},
	}

	bundle := executePlan(context.Background(), plan, testEnv())

	require.Len(t, bundle.Calls, 2)
	assert.Equal(t, map[string]string{"error": "Unknown tool: summon_accountant"}, bundle.Calls[0].Result)
	// The bad call did not abort the batch.
	assert.NotNil(t, bundle.Calls[1].Result)
}

func TestExecutePlanAppliesDefaults(t *testing.T) {
	env := testEnv()
	env.defaults = Defaults{Year: intPtr(2026), Month: intPtr(3), StartingBalance: 500}

	plan := Plan{
		Tier:  1,
		Calls: []PlannedCall{{Tool: string(ToolCashflow)}},
	}

	bundle := executePlan(context.Background(), plan, env)

	report, ok := bundle.Calls[0].Result.(analytics.CashflowReport)
	require.True(t, ok)
	assert.Equal(t, 500.0, report.StartingBalance)
	assert.Equal(t, 350.0, report.EndingBalance)
	assert.Equal(t, analytics.Period{Year: 2026, Month: 3}, bundle.PeriodDefault)
}

func TestExecutePlanExplicitArgsBeatDefaults(t *testing.T) {
	env := testEnv()
	env.defaults = Defaults{Year: intPtr(2020), Month: intPtr(1)}

	plan := Plan{
		Tier: 1,
		Calls: []PlannedCall{
			{Tool: string(ToolSpendingSummary), Args: ToolArgs{Year: intPtr(2026), Month: intPtr(3)}},
		},
	}

	bundle := executePlan(context.Background(), plan, env)

	summary := bundle.Calls[0].Result.(analytics.SpendingReport)
	assert.Equal(t, analytics.Period{Year: 2026, Month: 3}, summary.Period)
	assert.Equal(t, 150.0, summary.TotalSpent)
}

func TestDispatchSimulatePurchase(t *testing.T) {
	env := testEnv()

	result := dispatch(string(ToolSimulatePurchase), ToolArgs{
		Amount:   floatPtr(200),
		Category: "Dining",
		Year:     intPtr(2026),
		Month:    intPtr(3),
	}, env)

	report, ok := result.(analytics.SimulationReport)
	require.True(t, ok)
	assert.Equal(t, 200.0, report.Purchase.Amount)
	assert.Equal(t, "Dining", report.Purchase.Category)
	assert.Equal(t, 150.0, report.Budget.Before.Spent)
}

func TestParseTool(t *testing.T) {
	tool, ok := ParseTool("get_spending_summary")
	assert.True(t, ok)
	assert.Equal(t, ToolSpendingSummary, tool)

	_, ok = ParseTool("divine_intervention")
	assert.False(t, ok)
}
