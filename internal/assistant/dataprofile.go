package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// latestTransactionDate returns the newest parseable transaction date in ISO
// form, falling back to today when the collection is empty or unparseable.
// This anchors the planner's notion of "current" to the data, matching how
// period resolution works.
func latestTransactionDate(txns []types.Transaction) string {
	var latest time.Time
	found := false
	for _, t := range txns {
		d, err := types.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	if !found {
		return time.Now().Format("2006-01-02")
	}
	return latest.Format("2006-01-02")
}

// buildDataProfile summarizes which months actually have data, so the
// planner does not request periods that would come back empty.
func buildDataProfile(txns []types.Transaction) string {
	if len(txns) == 0 {
		return "No transactions found."
	}

	var dates []time.Time
	for _, t := range txns {
		d, err := types.ParseDate(t.Date)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return "No valid dates found in transactions."
	}

	minDate, maxDate := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	// Chronological list of distinct months.
	type ym struct{ y, m int }
	seen := map[ym]bool{}
	var months []string
	cursor := time.Date(minDate.Year(), minDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(maxDate.Year(), maxDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	has := map[ym]bool{}
	for _, d := range dates {
		has[ym{d.Year(), int(d.Month())}] = true
	}
	for !cursor.After(end) {
		key := ym{cursor.Year(), int(cursor.Month())}
		if has[key] && !seen[key] {
			months = append(months, cursor.Format("Jan 2006"))
			seen[key] = true
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return fmt.Sprintf(
		"Valid Data Range: %s to %s.\nMonths with data: %s.\n"+
			"IMPORTANT: Only create tool calls for months listed above. Do not hallucinate data for other months.",
		minDate.Format("2006-01-02"),
		maxDate.Format("2006-01-02"),
		strings.Join(months, ", "))
}
