package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// RecurringCharge is one detected recurring merchant charge.
type RecurringCharge struct {
	Merchant         string  `json:"merchant"`
	EstimatedMonthly float64 `json:"estimatedMonthly"`
	Occurrences      int     `json:"occurrences"`
	Category         string  `json:"category,omitempty"`
}

// RecurringReport is the result of the get_recurring_transactions tool.
type RecurringReport struct {
	Currency  string            `json:"currency"`
	Recurring []RecurringCharge `json:"recurring"`
	Note      string            `json:"note"`
}

// RecurringTransactions detects merchants that look like recurring charges:
// expenses within the trailing monthsBack months (anchored to wall-clock
// today), appearing in at least 3 distinct calendar months, with at least 3
// occurrences within 15% of the merchant's median amount (minimum tolerance
// $1). The median is reported as the estimated monthly charge.
func RecurringTransactions(txns []types.Transaction, monthsBack int) RecurringReport {
	today := now()
	startMonth := int(today.Month()) - monthsBack + 1
	if startMonth < 1 {
		startMonth = 1
	}
	windowStart := time.Date(today.Year(), time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)

	type dated struct {
		tx   types.Transaction
		date time.Time
	}
	byMerchant := make(map[string][]dated)
	for _, t := range txns {
		d, err := types.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if d.Before(windowStart) || !t.IsExpense() {
			continue
		}
		m := strings.TrimSpace(t.Merchant)
		if m == "" {
			m = "Unknown"
		}
		byMerchant[m] = append(byMerchant[m], dated{tx: t, date: d})
	}

	var recurring []RecurringCharge
	for merchant, rows := range byMerchant {
		months := make(map[[2]int]struct{})
		for _, r := range rows {
			months[[2]int{r.date.Year(), int(r.date.Month())}] = struct{}{}
		}
		if len(months) < 3 {
			continue
		}

		amounts := make([]float64, len(rows))
		for i, r := range rows {
			amounts[i] = r.tx.Amount
		}
		sort.Float64s(amounts)
		median := amounts[len(amounts)/2]

		tolerance := 0.15 * median
		if tolerance < 1.0 {
			tolerance = 1.0
		}
		var similar []types.Transaction
		for _, r := range rows {
			diff := r.tx.Amount - median
			if diff < 0 {
				diff = -diff
			}
			if diff <= tolerance {
				similar = append(similar, r.tx)
			}
		}
		if len(similar) < 3 {
			continue
		}

		recurring = append(recurring, RecurringCharge{
			Merchant:         merchant,
			EstimatedMonthly: types.Round2(median),
			Occurrences:      len(similar),
			Category:         similar[0].Category,
		})
	}

	sort.Slice(recurring, func(i, j int) bool {
		if recurring[i].EstimatedMonthly != recurring[j].EstimatedMonthly {
			return recurring[i].EstimatedMonthly > recurring[j].EstimatedMonthly
		}
		return recurring[i].Merchant < recurring[j].Merchant
	})
	if len(recurring) > 10 {
		recurring = recurring[:10]
	}

	return RecurringReport{
		Currency:  "USD",
		Recurring: recurring,
		Note:      "Recurring detection is heuristic, based on merchant recurrence and amount similarity.",
	}
}
