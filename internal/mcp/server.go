// Package mcp exposes the analytics tools over the Model Context Protocol so
// MCP-capable clients can query the finance data directly, without the
// planner/narrator loop.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tanaymit/Personal-Finance/internal/advisor"
	"github.com/tanaymit/Personal-Finance/internal/analytics"
	"github.com/tanaymit/Personal-Finance/internal/store"
)

type Server struct {
	store  *store.Store
	logger *log.Logger
}

func New(store *store.Store, logger *log.Logger) *Server {
	return &Server{
		store:  store,
		logger: logger,
	}
}

func (s *Server) Run() error {
	mcpServer := server.NewMCPServer(
		"Personal Finance Assistant",
		"1.0.0",
	)

	mcpServer.AddTool(mcp.NewTool("get_spending_summary",
		mcp.WithDescription("Spending totals and top categories. Without year/month, covers all time with per-month stats."),
		mcp.WithString("year", mcp.Description("Calendar year, e.g. 2026")),
		mcp.WithString("month", mcp.Description("Month number 1-12")),
	), s.spendingSummaryHandler)

	mcpServer.AddTool(mcp.NewTool("get_budget_status",
		mcp.WithDescription("Budget vs. actual spending for a month, with days remaining"),
		mcp.WithString("year", mcp.Description("Calendar year, e.g. 2026")),
		mcp.WithString("month", mcp.Description("Month number 1-12")),
	), s.budgetStatusHandler)

	mcpServer.AddTool(mcp.NewTool("get_category_spend",
		mcp.WithDescription("Spending for one category in a month, with top merchants"),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category name, e.g. Groceries"),
		),
		mcp.WithString("year", mcp.Description("Calendar year, e.g. 2026")),
		mcp.WithString("month", mcp.Description("Month number 1-12")),
	), s.categorySpendHandler)

	mcpServer.AddTool(mcp.NewTool("get_transaction_detail",
		mcp.WithDescription("Look up a single transaction by id"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Transaction id"),
		),
	), s.transactionDetailHandler)

	mcpServer.AddTool(mcp.NewTool("forecast_category_spending",
		mcp.WithDescription("Forecast next month's spend for a category from its historical average"),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category name, e.g. Groceries"),
		),
		mcp.WithString("months_back", mcp.Description("Months of history to average (default: 3)")),
		mcp.WithString("year", mcp.Description("Anchor year")),
		mcp.WithString("month", mcp.Description("Anchor month 1-12")),
	), s.forecastHandler)

	mcpServer.AddTool(mcp.NewTool("get_cashflow_projection",
		mcp.WithDescription("Day-by-day balance projection over a month"),
		mcp.WithString("year", mcp.Description("Calendar year, e.g. 2026")),
		mcp.WithString("month", mcp.Description("Month number 1-12")),
		mcp.WithString("starting_balance", mcp.Description("Balance at the start of the month (default: 0)")),
	), s.cashflowHandler)

	mcpServer.AddTool(mcp.NewTool("simulate_purchase",
		mcp.WithDescription("Show budget and cashflow before/after a hypothetical purchase"),
		mcp.WithString("amount",
			mcp.Required(),
			mcp.Description("Purchase amount in dollars"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category the purchase would fall under"),
		),
		mcp.WithString("year", mcp.Description("Calendar year, e.g. 2026")),
		mcp.WithString("month", mcp.Description("Month number 1-12")),
		mcp.WithString("starting_balance", mcp.Description("Balance at the start of the month (default: 0)")),
	), s.simulatePurchaseHandler)

	mcpServer.AddTool(mcp.NewTool("search_transactions",
		mcp.WithDescription("Search transactions by text, category, and date range"),
		mcp.WithString("query", mcp.Description("Substring to match in merchant or description")),
		mcp.WithString("category", mcp.Description("Category substring to match")),
		mcp.WithString("start_date", mcp.Description("Earliest date, YYYY-MM-DD")),
		mcp.WithString("end_date", mcp.Description("Latest date, YYYY-MM-DD")),
	), s.searchHandler)

	mcpServer.AddTool(mcp.NewTool("detect_anomalies",
		mcp.WithDescription("Largest expenses and unusually frequent merchants for a month"),
		mcp.WithString("year", mcp.Description("Calendar year, e.g. 2026")),
		mcp.WithString("month", mcp.Description("Month number 1-12")),
		mcp.WithString("limit", mcp.Description("How many large expenses to return (default: 3)")),
	), s.detectAnomaliesHandler)

	mcpServer.AddTool(mcp.NewTool("get_recurring_transactions",
		mcp.WithDescription("Detect subscription-like recurring charges"),
		mcp.WithString("months_back", mcp.Description("Months of history to consider (default: 4)")),
	), s.recurringHandler)

	mcpServer.AddTool(mcp.NewTool("get_user_goals",
		mcp.WithDescription("List the user's savings goals"),
	), s.userGoalsHandler)

	mcpServer.AddTool(mcp.NewTool("get_spending_profile",
		mcp.WithDescription("Statistical spending profile: volatility per category and z-score anomalies"),
	), s.spendingProfileHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		return err
	}

	return nil
}

// intArg coerces an optional numeric argument that clients may send as a
// number or string. Missing arguments return nil.
func intArg(request mcp.CallToolRequest, key string) (*int, error) {
	raw, ok := request.Params.Arguments[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		return &v, nil
	case float64:
		n := int(v)
		return &n, nil
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a valid integer: %w", key, err)
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("%s must be a number or string", key)
	}
}

func floatArg(request mcp.CallToolRequest, key string) (*float64, error) {
	raw, ok := request.Params.Arguments[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		f := float64(v)
		return &f, nil
	case float64:
		return &v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a valid number: %w", key, err)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("%s must be a number or string", key)
	}
}

func stringArg(request mcp.CallToolRequest, key string) string {
	v, _ := request.Params.Arguments[key].(string)
	return v
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) spendingSummaryHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.SpendingSummary(doc.Transactions, year, month))
}

func (s *Server) budgetStatusHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.BudgetStatus(doc.Transactions, doc.DefaultBudget, doc.CategoryBudgets, year, month))
}

func (s *Server) categorySpendHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := stringArg(request, "category")
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.CategorySpend(doc.Transactions, category, year, month))
}

func (s *Server) transactionDetailHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.TransactionDetail(doc.Transactions, stringArg(request, "id")))
}

func (s *Server) forecastHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := stringArg(request, "category")
	monthsBack, err := intArg(request, "months_back")
	if err != nil {
		return nil, err
	}
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}

	back := 3
	if monthsBack != nil {
		back = *monthsBack
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.ForecastCategorySpending(doc.Transactions, category, back, year, month))
}

func (s *Server) cashflowHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}
	balance, err := floatArg(request, "starting_balance")
	if err != nil {
		return nil, err
	}

	startingBalance := 0.0
	if balance != nil {
		startingBalance = *balance
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.CashflowProjection(doc.Transactions, year, month, startingBalance))
}

func (s *Server) simulatePurchaseHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := floatArg(request, "amount")
	if err != nil {
		return nil, err
	}
	if amount == nil {
		return nil, fmt.Errorf("amount is required")
	}
	category := stringArg(request, "category")
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}
	balance, err := floatArg(request, "starting_balance")
	if err != nil {
		return nil, err
	}

	startingBalance := 0.0
	if balance != nil {
		startingBalance = *balance
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.SimulatePurchase(doc.Transactions, doc.DefaultBudget, doc.CategoryBudgets, *amount, category, year, month, startingBalance))
}

func (s *Server) searchHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.SearchTransactions(
		doc.Transactions,
		stringArg(request, "query"),
		stringArg(request, "category"),
		stringArg(request, "start_date"),
		stringArg(request, "end_date"),
	))
}

func (s *Server) detectAnomaliesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := intArg(request, "year")
	if err != nil {
		return nil, err
	}
	month, err := intArg(request, "month")
	if err != nil {
		return nil, err
	}
	limitArg, err := intArg(request, "limit")
	if err != nil {
		return nil, err
	}

	limit := 3
	if limitArg != nil {
		limit = *limitArg
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.DetectAnomalies(doc.Transactions, year, month, limit))
}

func (s *Server) recurringHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	monthsBack, err := intArg(request, "months_back")
	if err != nil {
		return nil, err
	}

	back := 4
	if monthsBack != nil {
		back = *monthsBack
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(analytics.RecurringTransactions(doc.Transactions, back))
}

func (s *Server) userGoalsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(doc.Goals)
}

func (s *Server) spendingProfileHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return jsonResult(advisor.Analyze(doc.Transactions))
}
