package analytics

import (
	"time"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// BudgetReport is the result of the get_budget_status tool.
type BudgetReport struct {
	Period                 Period             `json:"period"`
	Currency               string             `json:"currency"`
	Budget                 float64            `json:"budget"`
	Spent                  float64            `json:"spent"`
	Remaining              float64            `json:"remaining"`
	PercentUsed            *float64           `json:"percentUsed"`
	DaysRemaining          int                `json:"daysRemaining"`
	AvgDailySpendThisMonth float64            `json:"avgDailySpendThisMonth"`
	CategoryBudgets        map[string]float64 `json:"categoryBudgets"`
	TopCategories          []CategoryTotal    `json:"topCategories"`
	Outlier                *SpendingOutlier   `json:"outlier"`
}

// BudgetStatus wraps SpendingSummary for the resolved period and derives
// budget arithmetic. daysRemaining counts from an "as-of" date: wall-clock
// today when today falls inside the resolved month, otherwise the latest
// transaction date within that period (or the 1st when the period is empty).
// This keeps a historical or demo month reporting mid-month numbers.
func BudgetStatus(txns []types.Transaction, defaultBudget float64, categoryBudgets map[string]float64, year, month *int) BudgetReport {
	p := ResolvePeriod(txns, year, month)
	spending := SpendingSummary(txns, &p.Year, &p.Month)
	spent := spending.TotalSpent
	budget := defaultBudget

	lastDay := daysInMonth(p.Year, p.Month)

	today := now()
	var asOf time.Time
	if today.Year() == p.Year && int(today.Month()) == p.Month {
		asOf = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		var latest time.Time
		var found bool
		for _, t := range FilterByPeriod(txns, p) {
			d, err := types.ParseDate(t.Date)
			if err != nil {
				continue
			}
			if !found || d.After(latest) {
				latest = d
				found = true
			}
		}
		if found {
			asOf = latest
		} else {
			asOf = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
		}
	}

	monthEnd := time.Date(p.Year, time.Month(p.Month), lastDay, 0, 0, 0, 0, time.UTC)
	daysRemaining := int(monthEnd.Sub(asOf).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	var percentUsed *float64
	if budget > 0 {
		pct := types.Round2(spent / budget * 100.0)
		percentUsed = &pct
	}

	return BudgetReport{
		Period:                 p,
		Currency:               "USD",
		Budget:                 types.Round2(budget),
		Spent:                  types.Round2(spent),
		Remaining:              types.Round2(budget - spent),
		PercentUsed:            percentUsed,
		DaysRemaining:          daysRemaining,
		AvgDailySpendThisMonth: types.Round2(spent / float64(lastDay)),
		CategoryBudgets:        categoryBudgets,
		TopCategories:          spending.TopCategories,
		Outlier:                spending.Outlier,
	}
}
