package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

const maxPlannedCalls = 4

// ToolArgs is the union of arguments any tool accepts. The planner model
// fills in only the fields relevant to each call; pointers distinguish
// "omitted" from zero.
type ToolArgs struct {
	Year            *int     `json:"year,omitempty"`
	Month           *int     `json:"month,omitempty"`
	Category        string   `json:"category,omitempty"`
	Query           string   `json:"query,omitempty"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	ID              string   `json:"id,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	StartingBalance *float64 `json:"startingBalance,omitempty"`
	MonthsBack      *int     `json:"months_back,omitempty"`
	Limit           *int     `json:"limit,omitempty"`
}

// PlannedCall is one tool invocation requested by the planner model.
type PlannedCall struct {
	Tool string   `json:"tool"`
	Args ToolArgs `json:"args"`
}

// Plan is the repaired output of the planning step.
type Plan struct {
	Tier        int           `json:"tier"`
	Calls       []PlannedCall `json:"calls"`
	AnswerStyle string        `json:"answerStyle"`
}

func defaultPlan() Plan {
	return Plan{
		Tier:        1,
		Calls:       []PlannedCall{{Tool: string(ToolBudgetStatus)}},
		AnswerStyle: "short",
	}
}

var jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)

// extractJSONObject pulls a JSON object out of a model reply: direct parse
// first, then the widest {...} span for replies wrapped in prose or fences.
func extractJSONObject(text string, v any) bool {
	if json.Unmarshal([]byte(text), v) == nil {
		return true
	}
	m := jsonObjectRe.FindString(text)
	if m == "" {
		return false
	}
	return json.Unmarshal([]byte(m), v) == nil
}

func plannerSystemPrompt(txns []types.Transaction) string {
	return fmt.Sprintf(
		"Current Date: %s\nDATA CONTEXT:\n%s\n\n", latestTransactionDate(txns), buildDataProfile(txns)) +
		"You are a routing planner for a personal finance chatbot. Return JSON only.\n" +
		"Choose tool calls to answer the user's question.\n" +
		"If the user asks for 'past 3 months', look at the 'Months with data' list and pick the most recent ones.\n" +
		"Default to the latest active month if not specified.\n" +
		"To find 'highest' or 'most expensive' month, use get_spending_summary WITHOUT arguments.\n" +
		"Tools available:\n" +
		"- get_spending_summary(year?, month?) -> If no args, returns All Time stats.\n" +
		"- search_transactions(query?, category?, start_date?, end_date?) -> Validates dates YYYY-MM-DD.\n" +
		"- get_budget_status(year?, month?)\n" +
		"- get_cashflow_projection(year?, month?, startingBalance?) -> Ask user for balance if possible.\n" +
		"- get_category_spend(category, year?, month?)\n" +
		"- forecast_category_spending(category, months_back=3, year?, month?) -> Forecasts spending based on historical average.\n" +
		"- get_transaction_detail(id)\n" +
		"- simulate_purchase(amount, category, year?, month?, startingBalance?)\n" +
		"- detect_anomalies(year?, month?, limit?)\n" +
		"- get_recurring_transactions()\n" +
		"- get_user_goals()\n" +
		"Output schema:\n" +
		"{\n" +
		"  \"tier\": 1 or 2,\n" +
		"  \"calls\": [{\"tool\": string, \"args\": object}],\n" +
		"  \"answerStyle\": \"short\" or \"detailed\"\n" +
		"}\n" +
		"Tier 1 = single call. Tier 2 = multiple calls (2-4).\n"
}

// planToolCalls asks the planner model for a bounded tool-call plan. A reply
// that is not valid JSON degrades to the default plan; a transport failure
// is returned to the caller.
func (a *Assistant) planToolCalls(ctx context.Context, userText string, txns []types.Transaction) (Plan, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: plannerSystemPrompt(txns)},
		{Role: openai.ChatMessageRoleUser, Content: userText},
	}

	raw, err := a.completer.Complete(ctx, messages, a.plannerModel, 0.0)
	if err != nil {
		return Plan{}, fmt.Errorf("planning failed: %w", err)
	}

	plan := repairPlan(raw)
	a.logger.Debug("Planned tool calls",
		"tier", plan.Tier,
		"calls", len(plan.Calls),
		"answer_style", plan.AnswerStyle)
	return plan, nil
}

// repairPlan parses and normalizes a planner reply. Malformed calls become
// an empty list, the list is clamped, an empty plan gets the default budget
// call, and answerStyle falls back to "short".
func repairPlan(raw string) Plan {
	var parsed struct {
		Tier        int             `json:"tier"`
		Calls       json.RawMessage `json:"calls"`
		AnswerStyle string          `json:"answerStyle"`
	}
	if !extractJSONObject(raw, &parsed) {
		return defaultPlan()
	}

	plan := Plan{Tier: parsed.Tier, AnswerStyle: parsed.AnswerStyle}
	if len(parsed.Calls) > 0 {
		if err := json.Unmarshal(parsed.Calls, &plan.Calls); err != nil {
			plan.Calls = nil
		}
	}

	if len(plan.Calls) > maxPlannedCalls {
		plan.Calls = plan.Calls[:maxPlannedCalls]
	}
	if len(plan.Calls) == 0 {
		plan.Tier = 1
		plan.Calls = []PlannedCall{{Tool: string(ToolBudgetStatus)}}
	}
	if plan.AnswerStyle != "short" && plan.AnswerStyle != "detailed" {
		plan.AnswerStyle = "short"
	}
	return plan
}
