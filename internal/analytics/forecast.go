package analytics

import "github.com/tanaymit/Personal-Finance/internal/types"

// MonthlySpend is one month's category spend in a forecast history.
type MonthlySpend struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Spent float64 `json:"spent"`
}

// ForecastReport is the result of the forecast_category_spending tool.
type ForecastReport struct {
	Category                 string         `json:"category"`
	LookbackMonths           int            `json:"lookback_months"`
	HistoricalData           []MonthlySpend `json:"historical_data"`
	AverageMonthlySpend      float64        `json:"average_monthly_spend"`
	ForecastedSpendNextMonth float64        `json:"forecasted_spend_next_month"`
	Confidence               string         `json:"confidence"`
}

// ForecastCategorySpending averages the category's spend over the trailing
// monthsBack whole calendar months (wrapping year boundaries) and reports
// the average as next month's forecast. Historical data is returned oldest
// first.
func ForecastCategorySpending(txns []types.Transaction, category string, monthsBack int, year, month *int) ForecastReport {
	p := ResolvePeriod(txns, year, month)

	history := make([]MonthlySpend, 0, monthsBack)
	for i := 0; i < monthsBack; i++ {
		checkYear, checkMonth := p.Year, p.Month-i
		for checkMonth <= 0 {
			checkMonth += 12
			checkYear--
		}

		var spent float64
		for _, t := range FilterByPeriod(txns, Period{Year: checkYear, Month: checkMonth}) {
			if t.IsExpense() && categoryMatches(t, category) {
				spent += t.Amount
			}
		}
		history = append(history, MonthlySpend{Year: checkYear, Month: checkMonth, Spent: types.Round2(spent)})
	}

	var total float64
	for _, m := range history {
		total += m.Spent
	}
	var average float64
	if monthsBack > 0 {
		average = types.Round2(total / float64(monthsBack))
	}

	// Computed newest first; report chronologically.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	confidence := "Low"
	if monthsBack >= 3 {
		confidence = "Medium"
	}

	return ForecastReport{
		Category:                 category,
		LookbackMonths:           monthsBack,
		HistoricalData:           history,
		AverageMonthlySpend:      average,
		ForecastedSpendNextMonth: average,
		Confidence:               confidence,
	}
}
