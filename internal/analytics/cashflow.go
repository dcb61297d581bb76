package analytics

import (
	"sort"
	"time"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// CashflowReport is the result of the get_cashflow_projection tool.
type CashflowReport struct {
	Period            Period  `json:"period"`
	Currency          string  `json:"currency"`
	StartingBalance   float64 `json:"startingBalance"`
	LowestBalance     float64 `json:"lowestBalance"`
	LowestBalanceDate *string `json:"lowestBalanceDate"`
	EndingBalance     float64 `json:"endingBalance"`
	Note              string  `json:"note"`
}

// CashflowProjection walks the period's transactions in date order and
// tracks the running balance. Expenses are positive amounts, so each step
// applies the negated amount: spending lowers the balance, income raises it.
func CashflowProjection(txns []types.Transaction, year, month *int, startingBalance float64) CashflowReport {
	p := ResolvePeriod(txns, year, month)

	type row struct {
		date   time.Time
		amount float64
	}
	var rows []row
	for _, t := range FilterByPeriod(txns, p) {
		d, err := types.ParseDate(t.Date)
		if err != nil {
			continue
		}
		rows = append(rows, row{date: d, amount: t.Amount})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	balance := startingBalance
	lowest := balance
	var lowestDate *string
	for _, r := range rows {
		balance += -r.amount
		if balance < lowest {
			lowest = balance
			iso := r.date.Format("2006-01-02")
			lowestDate = &iso
		}
	}

	return CashflowReport{
		Period:            p,
		Currency:          "USD",
		StartingBalance:   types.Round2(startingBalance),
		LowestBalance:     types.Round2(lowest),
		LowestBalanceDate: lowestDate,
		EndingBalance:     types.Round2(balance),
		Note:              "Projection is based only on imported transactions; it is not linked to your real bank balance.",
	}
}
