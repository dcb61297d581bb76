// Package advisor computes the statistical spending profile used by the
// advice flow. Unlike the planner-facing anomaly tool, which just surfaces
// the largest expenses, this path computes real per-category distributions
// and z-scores.
package advisor

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// Anomaly is a recent transaction whose amount is unusually high for its
// category.
type Anomaly struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	ZScore   float64 `json:"z_score"`
	Message  string  `json:"message"`
}

// Stats summarizes spending volatility and recent anomalies across the
// whole transaction history.
type Stats struct {
	MonthlyBurnRate    float64   `json:"monthly_burn_rate"`
	VolatileCategories []string  `json:"volatile_categories"`
	StableCategories   []string  `json:"stable_categories"`
	RecentAnomalies    []Anomaly `json:"recent_anomalies"`
	TransactionCount   int       `json:"transaction_count"`
}

type categoryStats struct {
	mean   float64
	stddev float64
}

// Analyze groups transactions by category and computes mean and sample
// standard deviation for every category with more than 2 transactions.
// Categories with a coefficient of variation above 0.5 are reported as
// volatile, below 0.2 as stable. The most recent 10 transactions are
// checked for z-scores above 2.0; categories with a stddev at or below 1.0
// are skipped so near-zero variance cannot produce false positives.
func Analyze(txns []types.Transaction) Stats {
	if len(txns) == 0 {
		return Stats{}
	}

	byCategory := make(map[string][]float64)
	var totalSpent float64
	for _, t := range txns {
		byCategory[t.Category] = append(byCategory[t.Category], t.Amount)
		totalSpent += t.Amount
	}

	stats := make(map[string]categoryStats)
	var volatile, stable []string
	for cat, amounts := range byCategory {
		if len(amounts) <= 2 {
			continue
		}
		mean := sum(amounts) / float64(len(amounts))
		var variance float64
		for _, a := range amounts {
			variance += (a - mean) * (a - mean)
		}
		variance /= float64(len(amounts) - 1)
		stddev := math.Sqrt(variance)
		stats[cat] = categoryStats{mean: mean, stddev: stddev}

		if mean != 0 {
			cv := stddev / mean
			if cv > 0.5 {
				volatile = append(volatile, cat)
			} else if cv < 0.2 {
				stable = append(stable, cat)
			}
		}
	}
	sort.Strings(volatile)
	sort.Strings(stable)

	var anomalies []Anomaly
	recent := txns
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	for _, t := range recent {
		cs, ok := stats[t.Category]
		if !ok || cs.stddev <= 1.0 {
			continue
		}
		z := (t.Amount - cs.mean) / cs.stddev
		if z > 2.0 {
			z = math.Round(z*10) / 10
			anomalies = append(anomalies, Anomaly{
				Merchant: t.Merchant,
				Amount:   t.Amount,
				Category: t.Category,
				ZScore:   z,
				Message:  fmt.Sprintf("$%.2f is %.1fx standard deviations high for %s", t.Amount, z, t.Category),
			})
		}
	}

	return Stats{
		MonthlyBurnRate:    types.Round2(totalSpent),
		VolatileCategories: volatile,
		StableCategories:   stable,
		RecentAnomalies:    anomalies,
		TransactionCount:   len(txns),
	}
}

func sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}
