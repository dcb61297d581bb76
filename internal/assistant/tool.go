package assistant

// Tool identifies one of the analytics operations the planner may request.
// Tool names are the wire contract with the planner model, so they stay
// snake_case.
type Tool string

const (
	ToolSpendingSummary   Tool = "get_spending_summary"
	ToolBudgetStatus      Tool = "get_budget_status"
	ToolCategorySpend     Tool = "get_category_spend"
	ToolTransactionDetail Tool = "get_transaction_detail"
	ToolForecast          Tool = "forecast_category_spending"
	ToolCashflow          Tool = "get_cashflow_projection"
	ToolSimulatePurchase  Tool = "simulate_purchase"
	ToolSearch            Tool = "search_transactions"
	ToolDetectAnomalies   Tool = "detect_anomalies"
	ToolRecurring         Tool = "get_recurring_transactions"
	ToolUserGoals         Tool = "get_user_goals"
)

var knownTools = map[Tool]bool{
	ToolSpendingSummary:   true,
	ToolBudgetStatus:      true,
	ToolCategorySpend:     true,
	ToolTransactionDetail: true,
	ToolForecast:          true,
	ToolCashflow:          true,
	ToolSimulatePurchase:  true,
	ToolSearch:            true,
	ToolDetectAnomalies:   true,
	ToolRecurring:         true,
	ToolUserGoals:         true,
}

// ParseTool reports whether name is a registered tool. Unknown names are
// kept as-is so the executor can report them inline instead of aborting the
// batch.
func ParseTool(name string) (Tool, bool) {
	t := Tool(name)
	return t, knownTools[t]
}
