package analytics

import (
	"strings"
	"time"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// SearchFilter echoes the filters a search ran with.
type SearchFilter struct {
	Query     string `json:"query,omitempty"`
	Category  string `json:"category,omitempty"`
	StartDate string `json:"start,omitempty"`
	EndDate   string `json:"end,omitempty"`
}

// SearchReport is the result of the search_transactions tool. Count and
// TotalAmount reflect the full match set even though Transactions is capped.
type SearchReport struct {
	Count        int                 `json:"count"`
	TotalAmount  float64             `json:"totalAmount"`
	Transactions []types.Transaction `json:"transactions"`
	Filter       SearchFilter        `json:"filter"`
}

const searchResultCap = 20

// SearchTransactions matches free text (case-insensitive substring) against
// merchant or description, combined with an optional category substring
// match and an optional inclusive date range. When a date range is given,
// rows with unparsable dates are excluded from matching.
func SearchTransactions(txns []types.Transaction, query, category, startDate, endDate string) SearchReport {
	parse := func(v string) *time.Time {
		if v == "" {
			return nil
		}
		d, err := types.ParseDate(v)
		if err != nil {
			return nil
		}
		return &d
	}
	start := parse(startDate)
	end := parse(endDate)

	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))

	var matches []types.Transaction
	var total float64
	for _, t := range txns {
		if start != nil || end != nil {
			d, err := types.ParseDate(t.Date)
			if err != nil {
				continue
			}
			if start != nil && d.Before(*start) {
				continue
			}
			if end != nil && d.After(*end) {
				continue
			}
		}
		if cat != "" && !strings.Contains(strings.ToLower(t.Category), cat) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Merchant), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}

		matches = append(matches, t)
		if t.IsExpense() {
			total += t.Amount
		}
	}

	sortByDateDesc(matches)

	visible := matches
	if len(visible) > searchResultCap {
		visible = visible[:searchResultCap]
	}

	return SearchReport{
		Count:        len(matches),
		TotalAmount:  types.Round2(total),
		Transactions: visible,
		Filter: SearchFilter{
			Query:     query,
			Category:  category,
			StartDate: startDate,
			EndDate:   endDate,
		},
	}
}
