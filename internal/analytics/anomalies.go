package analytics

import (
	"sort"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// AnomalousTransaction is one notable expense surfaced by anomaly detection.
type AnomalousTransaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Merchant    string  `json:"merchant"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// MerchantFrequency counts repeated charges from one merchant in a period.
type MerchantFrequency struct {
	Merchant string `json:"merchant"`
	Count    int    `json:"count"`
}

// AnomalyReport is the result of the detect_anomalies tool.
type AnomalyReport struct {
	Period        Period                 `json:"period"`
	Currency      string                 `json:"currency"`
	HighValue     []AnomalousTransaction `json:"highValue"`
	HighFrequency []MerchantFrequency    `json:"highFrequency"`
	Method        string                 `json:"method"`
}

// DetectAnomalies surfaces obviously notable expenses in the resolved
// period: the top-limit largest single transactions and merchants charged
// five or more times. This is a heuristic, not a statistical model; the
// advisor package carries the z-score path.
func DetectAnomalies(txns []types.Transaction, year, month *int, limit int) AnomalyReport {
	p := ResolvePeriod(txns, year, month)
	periodExpenses := expenses(FilterByPeriod(txns, p))

	if limit < 1 {
		limit = 1
	}

	top := make([]types.Transaction, len(periodExpenses))
	copy(top, periodExpenses)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Amount > top[j].Amount })
	if len(top) > limit {
		top = top[:limit]
	}

	highValue := make([]AnomalousTransaction, 0, len(top))
	for _, t := range top {
		highValue = append(highValue, AnomalousTransaction{
			ID:          t.ID,
			Date:        t.Date,
			Merchant:    t.Merchant,
			Category:    t.Category,
			Amount:      types.Round2(t.Amount),
			Description: t.Description,
		})
	}

	counts := make(map[string]int)
	for _, t := range periodExpenses {
		m := t.Merchant
		if m == "" {
			m = "Unknown"
		}
		counts[m]++
	}
	var frequent []MerchantFrequency
	for m, c := range counts {
		if c >= 5 {
			frequent = append(frequent, MerchantFrequency{Merchant: m, Count: c})
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].Count != frequent[j].Count {
			return frequent[i].Count > frequent[j].Count
		}
		return frequent[i].Merchant < frequent[j].Merchant
	})
	if len(frequent) > 3 {
		frequent = frequent[:3]
	}

	return AnomalyReport{
		Period:        p,
		Currency:      "USD",
		HighValue:     highValue,
		HighFrequency: frequent,
		Method:        "largest_expenses_and_frequency",
	}
}
