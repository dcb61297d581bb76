package analytics

import (
	"strings"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// MonthTotal is a single month's spend in an all-time summary.
type MonthTotal struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

// SpendingOutlier is the single largest expense in a period. Not a
// statistical outlier, just the biggest line item.
type SpendingOutlier struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Merchant    string  `json:"merchant"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// SpendingReport is the result of the get_spending_summary tool. Period is
// either a Period value or the literal string "All Time".
type SpendingReport struct {
	Period              any              `json:"period"`
	Currency            string           `json:"currency"`
	TotalSpent          float64          `json:"totalSpent"`
	TopCategories       []CategoryTotal  `json:"topCategories"`
	Outlier             *SpendingOutlier `json:"outlier"`
	HighestMonth        *MonthTotal      `json:"highestMonth"`
	AverageMonthlySpend *float64         `json:"averageMonthlySpend"`
}

// SpendingSummary reports total spend, top categories and the largest single
// expense. When both year and month are absent it switches to all-time mode,
// which additionally derives per-month totals, the highest month, and the
// average monthly spend across months that have data.
func SpendingSummary(txns []types.Transaction, year, month *int) SpendingReport {
	allTime := year == nil && month == nil

	var periodVal any
	var scoped []types.Transaction
	if allTime {
		periodVal = AllTime
		scoped = txns
	} else {
		p := ResolvePeriod(txns, year, month)
		periodVal = p
		scoped = FilterByPeriod(txns, p)
	}
	exp := expenses(scoped)

	var total float64
	monthly := make(map[string]float64)
	for _, t := range exp {
		total += t.Amount
		if allTime {
			if d, err := types.ParseDate(t.Date); err == nil {
				monthly[d.Format("2006-01")] += t.Amount
			}
		}
	}

	report := SpendingReport{
		Period:        periodVal,
		Currency:      "USD",
		TotalSpent:    types.Round2(total),
		TopCategories: topCategories(exp, 3),
	}

	if len(exp) > 0 {
		biggest := exp[0]
		for _, t := range exp[1:] {
			if t.Amount > biggest.Amount {
				biggest = t
			}
		}
		cat := strings.TrimSpace(biggest.Category)
		if cat == "" {
			cat = "Other"
		}
		report.Outlier = &SpendingOutlier{
			ID:          biggest.ID,
			Date:        biggest.Date,
			Merchant:    biggest.Merchant,
			Description: biggest.Description,
			Category:    cat,
			Amount:      types.Round2(biggest.Amount),
		}
	}

	if len(monthly) > 0 {
		var maxMonth string
		for m := range monthly {
			if maxMonth == "" || monthly[m] > monthly[maxMonth] ||
				(monthly[m] == monthly[maxMonth] && m < maxMonth) {
				maxMonth = m
			}
		}
		report.HighestMonth = &MonthTotal{Month: maxMonth, Amount: types.Round2(monthly[maxMonth])}
		avg := types.Round2(total / float64(len(monthly)))
		report.AverageMonthlySpend = &avg
	}

	return report
}
