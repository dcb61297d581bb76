package analytics

import (
	"sort"
	"strings"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// CategoryTotal is a per-category spend line in a report.
type CategoryTotal struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
}

// MerchantTotal is a per-merchant spend line in a report.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	Spent    float64 `json:"spent"`
}

func expenses(txns []types.Transaction) []types.Transaction {
	var out []types.Transaction
	for _, t := range txns {
		if t.IsExpense() {
			out = append(out, t)
		}
	}
	return out
}

// topCategories groups expenses by category (blank defaults to "Other"),
// sums, and returns the top n by spend.
func topCategories(txns []types.Transaction, n int) []CategoryTotal {
	totals := make(map[string]float64)
	for _, t := range txns {
		cat := strings.TrimSpace(t.Category)
		if cat == "" {
			cat = "Other"
		}
		totals[cat] += t.Amount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, sum := range totals {
		out = append(out, CategoryTotal{Category: cat, Spent: types.Round2(sum)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Spent != out[j].Spent {
			return out[i].Spent > out[j].Spent
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// topMerchants groups expenses by merchant (blank defaults to "Unknown"),
// sums, and returns the top n by spend.
func topMerchants(txns []types.Transaction, n int) []MerchantTotal {
	totals := make(map[string]float64)
	for _, t := range txns {
		m := strings.TrimSpace(t.Merchant)
		if m == "" {
			m = "Unknown"
		}
		totals[m] += t.Amount
	}

	out := make([]MerchantTotal, 0, len(totals))
	for m, sum := range totals {
		out = append(out, MerchantTotal{Merchant: m, Spent: types.Round2(sum)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Spent != out[j].Spent {
			return out[i].Spent > out[j].Spent
		}
		return out[i].Merchant < out[j].Merchant
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
