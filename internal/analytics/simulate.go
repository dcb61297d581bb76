package analytics

import (
	"math"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// PlannedPurchase describes the hypothetical expense being simulated.
type PlannedPurchase struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// BudgetComparison holds budget status before and after a simulated purchase.
type BudgetComparison struct {
	Before BudgetReport `json:"before"`
	After  BudgetReport `json:"after"`
}

// CashflowComparison holds cashflow projections before and after a simulated
// purchase.
type CashflowComparison struct {
	Before CashflowReport `json:"before"`
	After  CashflowReport `json:"after"`
}

// SimulationReport is the result of the simulate_purchase tool.
type SimulationReport struct {
	Period   Period             `json:"period"`
	Currency string             `json:"currency"`
	Purchase PlannedPurchase    `json:"purchase"`
	Budget   BudgetComparison   `json:"budget"`
	Cashflow CashflowComparison `json:"cashflow"`
}

// SimulatePurchase computes budget status and cashflow projection twice:
// once on the stored transactions, once with a single synthetic expense
// prepended. The input slice is never mutated or persisted.
func SimulatePurchase(txns []types.Transaction, defaultBudget float64, categoryBudgets map[string]float64, amount float64, category string, year, month *int, startingBalance float64) SimulationReport {
	p := ResolvePeriod(txns, year, month)

	before := BudgetStatus(txns, defaultBudget, categoryBudgets, &p.Year, &p.Month)
	cashBefore := CashflowProjection(txns, &p.Year, &p.Month, startingBalance)

	added := types.Transaction{
		Date:        now().Format("2006-01-02"),
		Merchant:    "Simulated Purchase",
		Amount:      math.Abs(amount),
		Category:    category,
		Description: "Simulated purchase for affordability check",
	}

	temp := make([]types.Transaction, 0, len(txns)+1)
	temp = append(temp, added)
	temp = append(temp, txns...)

	after := BudgetStatus(temp, defaultBudget, categoryBudgets, &p.Year, &p.Month)
	cashAfter := CashflowProjection(temp, &p.Year, &p.Month, startingBalance)

	return SimulationReport{
		Period:   p,
		Currency: "USD",
		Purchase: PlannedPurchase{Amount: types.Round2(math.Abs(amount)), Category: category},
		Budget:   BudgetComparison{Before: before, After: after},
		Cashflow: CashflowComparison{Before: cashBefore, After: cashAfter},
	}
}
