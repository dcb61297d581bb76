package assistant

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tanaymit/Personal-Finance/internal/analytics"
	"github.com/tanaymit/Personal-Finance/internal/types"
)

// Defaults carries request-level fallbacks applied to any planned call whose
// args omit them.
type Defaults struct {
	Year            *int
	Month           *int
	StartingBalance float64
}

// ExecutedCall pairs a planned call with its result for the fact bundle.
type ExecutedCall struct {
	Tool   string   `json:"tool"`
	Args   ToolArgs `json:"args"`
	Result any      `json:"result"`
}

// FactBundle is the ephemeral fact set handed to the narration step. It is
// never persisted.
type FactBundle struct {
	PeriodDefault analytics.Period `json:"periodDefault"`
	Calls         []ExecutedCall   `json:"calls"`
}

// executeEnv is everything a tool dispatch can read. All of it is treated as
// immutable for the duration of one query.
type executeEnv struct {
	transactions []types.Transaction
	settings     types.Settings
	goals        []types.Goal
	defaults     Defaults
}

// executePlan runs every planned call and collects results in plan order.
// Calls are independent pure reads, so they run concurrently.
func executePlan(ctx context.Context, plan Plan, env executeEnv) FactBundle {
	bundle := FactBundle{
		PeriodDefault: analytics.ResolvePeriod(env.transactions, env.defaults.Year, env.defaults.Month),
		Calls:         make([]ExecutedCall, len(plan.Calls)),
	}

	g, _ := errgroup.WithContext(ctx)
	for i, call := range plan.Calls {
		g.Go(func() error {
			args := applyDefaults(call.Args, env.defaults)
			bundle.Calls[i] = ExecutedCall{
				Tool:   call.Tool,
				Args:   args,
				Result: dispatch(call.Tool, args, env),
			}
			return nil
		})
	}
	// Dispatches are pure and never return errors.
	_ = g.Wait()

	return bundle
}

func applyDefaults(args ToolArgs, d Defaults) ToolArgs {
	if args.Year == nil {
		args.Year = d.Year
	}
	if args.Month == nil {
		args.Month = d.Month
	}
	if args.StartingBalance == nil && d.StartingBalance != 0 {
		sb := d.StartingBalance
		args.StartingBalance = &sb
	}
	return args
}

func dispatch(name string, args ToolArgs, env executeEnv) any {
	startingBalance := 0.0
	if args.StartingBalance != nil {
		startingBalance = *args.StartingBalance
	}

	tool, ok := ParseTool(name)
	if !ok {
		return map[string]string{"error": "Unknown tool: " + name}
	}

	switch tool {
	case ToolSpendingSummary:
		return analytics.SpendingSummary(env.transactions, args.Year, args.Month)
	case ToolBudgetStatus:
		return analytics.BudgetStatus(env.transactions, env.settings.DefaultBudget, env.settings.CategoryBudgets, args.Year, args.Month)
	case ToolCategorySpend:
		return analytics.CategorySpend(env.transactions, args.Category, args.Year, args.Month)
	case ToolTransactionDetail:
		return analytics.TransactionDetail(env.transactions, args.ID)
	case ToolForecast:
		monthsBack := 3
		if args.MonthsBack != nil {
			monthsBack = *args.MonthsBack
		}
		return analytics.ForecastCategorySpending(env.transactions, args.Category, monthsBack, args.Year, args.Month)
	case ToolCashflow:
		return analytics.CashflowProjection(env.transactions, args.Year, args.Month, startingBalance)
	case ToolSimulatePurchase:
		amount := 0.0
		if args.Amount != nil {
			amount = *args.Amount
		}
		return analytics.SimulatePurchase(env.transactions, env.settings.DefaultBudget, env.settings.CategoryBudgets, amount, args.Category, args.Year, args.Month, startingBalance)
	case ToolSearch:
		return analytics.SearchTransactions(env.transactions, args.Query, args.Category, args.StartDate, args.EndDate)
	case ToolDetectAnomalies:
		limit := 3
		if args.Limit != nil {
			limit = *args.Limit
		}
		return analytics.DetectAnomalies(env.transactions, args.Year, args.Month, limit)
	case ToolRecurring:
		monthsBack := 4
		if args.MonthsBack != nil {
			monthsBack = *args.MonthsBack
		}
		return analytics.RecurringTransactions(env.transactions, monthsBack)
	case ToolUserGoals:
		return env.goals
	default:
		return map[string]string{"error": "Unknown tool: " + name}
	}
}
