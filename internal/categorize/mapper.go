// Package categorize maps raw bank-statement rows onto the fixed category
// enumeration using direct lookups plus ordered keyword heuristics.
package categorize

import "strings"

func containsAny(text string, keywords []string) bool {
	t := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// MapToFixedCategory maps a statement row (type + raw category +
// description) to a fixed category. Deterministic decision order: deposits
// first, then the EMI/Loans special case, then the direct mapping table,
// then keyword buckets when the mapping is missing or too generic, with a
// personal-care override just before the mapped value is accepted. Always
// returns a member of types.FixedCategories.
func MapToFixedCategory(csvType, csvCategory, description string) string {
	rawCategory := strings.TrimSpace(csvCategory)
	txType := strings.ToLower(strings.TrimSpace(csvType))
	desc := strings.TrimSpace(description)
	descLower := strings.ToLower(desc)

	if txType == "deposit" {
		if strings.Contains(descLower, "payroll") || strings.Contains(descLower, "salary") {
			return "Income"
		}
		return "Transfers"
	}

	// EMI/Loans is too broad in source data: it mixes insurance premiums and
	// subscriptions in with real loan payments.
	if rawCategory == "EMI/Loans" {
		if containsAny(desc, insuranceKeywords) {
			return "Insurance"
		}
		if containsAny(desc, subscriptionKeywords) {
			return "Subscriptions"
		}
		return "Debt Payments"
	}

	mapped, hasMapping := directMappings[rawCategory]

	if !hasMapping || mapped == "Other" {
		for _, bucket := range fallbackBuckets {
			if containsAny(desc, bucket.keywords) {
				return bucket.category
			}
		}
	}

	if rawCategory == "Personal Care" || containsAny(desc, personalCareKeywords) {
		return "Personal Care"
	}

	if hasMapping {
		return mapped
	}

	return "Other"
}
