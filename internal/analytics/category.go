package analytics

import (
	"strings"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// CategoryReport is the result of the get_category_spend tool.
type CategoryReport struct {
	Period           Period          `json:"period"`
	Currency         string          `json:"currency"`
	Category         string          `json:"category"`
	Spent            float64         `json:"spent"`
	TransactionCount int             `json:"transactionCount"`
	TopMerchants     []MerchantTotal `json:"topMerchants"`
}

func categoryMatches(t types.Transaction, category string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Category), strings.TrimSpace(category))
}

// CategorySpend totals expenses for one category within the resolved period.
// Category names match case-insensitively after trimming.
func CategorySpend(txns []types.Transaction, category string, year, month *int) CategoryReport {
	p := ResolvePeriod(txns, year, month)

	var matches []types.Transaction
	for _, t := range FilterByPeriod(txns, p) {
		if t.IsExpense() && categoryMatches(t, category) {
			matches = append(matches, t)
		}
	}

	var spent float64
	for _, t := range matches {
		spent += t.Amount
	}

	return CategoryReport{
		Period:           p,
		Currency:         "USD",
		Category:         category,
		Spent:            types.Round2(spent),
		TransactionCount: len(matches),
		TopMerchants:     topMerchants(matches, 5),
	}
}
