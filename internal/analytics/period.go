package analytics

import (
	"sort"
	"time"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// now is replaced in tests to pin wall-clock behavior.
var now = time.Now

// Period is a calendar (year, month) pair scoping most reports.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// AllTime is the period marker reported when a summary covers every
// transaction on record rather than a single month.
const AllTime = "All Time"

// ResolvePeriod determines the reporting period. Explicit arguments are
// returned unchanged; a missing piece falls back to the month of the most
// recent parseable transaction date, then to the current system date.
// Anchoring to the data rather than the wall clock lets a static dataset
// behave as if it were current while still degrading sanely for empty
// stores.
func ResolvePeriod(txns []types.Transaction, year, month *int) Period {
	if year != nil && month != nil {
		return Period{Year: *year, Month: *month}
	}

	var latest time.Time
	var found bool
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

	base := now()
	if found {
		base = latest
	}

	p := Period{Year: base.Year(), Month: int(base.Month())}
	if year != nil {
		p.Year = *year
	}
	if month != nil {
		p.Month = *month
	}
	return p
}

// FilterByPeriod keeps transactions whose parsed date falls in the given
// calendar month. Rows with unparsable dates are dropped silently.
func FilterByPeriod(txns []types.Transaction, p Period) []types.Transaction {
	var out []types.Transaction
	for _, t := range txns {
		d, err := types.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if d.Year() == p.Year && int(d.Month()) == p.Month {
			out = append(out, t)
		}
	}
	return out
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// sortByDateDesc orders transactions newest first for display. Unparsable
// dates sort as the minimum date, so they come last.
func sortByDateDesc(txns []types.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		di, err := types.ParseDate(txns[i].Date)
		if err != nil {
			di = time.Time{}
		}
		dj, err := types.ParseDate(txns[j].Date)
		if err != nil {
			dj = time.Time{}
		}
		return di.After(dj)
	})
}
