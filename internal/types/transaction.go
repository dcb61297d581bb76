package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the atomic record of the finance store.
//
// Sign convention: positive amounts are money spent (expenses), negative
// amounts are money received (income or refunds). This is inverted from
// common ledger convention and is relied on everywhere downstream.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Merchant    string  `json:"merchant"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}

// IsExpense reports whether the transaction spent money.
func (t Transaction) IsExpense() bool {
	return t.Amount > 0
}

// Goal is a user savings goal. Pure data; the assistant only surfaces it
// verbatim as a fact source.
type Goal struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate,omitempty"`
	Note         string  `json:"note,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// Settings holds the monthly budget ceilings. DefaultBudget applies when no
// category-specific ceiling exists.
type Settings struct {
	DefaultBudget   float64            `json:"default_budget"`
	CategoryBudgets map[string]float64 `json:"category_budgets"`
}

var dateFormats = []string{"2006-01-02", "01/02/2006", "01/02/06"}

// ParseDate parses a transaction date in any of the accepted formats
// (ISO-8601, MM/DD/YYYY, MM/DD/YY). Callers treat a parse failure as "skip
// this record", never as a hard error.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateFormats {
		d, err := time.Parse(layout, v)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// Tools round at the point of return only, to avoid compounding error.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
