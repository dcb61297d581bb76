package types

// FixedCategories is the closed set of spending categories every
// transaction's category field must belong to.
var FixedCategories = []string{
	"Income",
	"Housing & Rent",
	"Debt Payments",
	"Home Maintenance",
	"Utilities & Bills",
	"Groceries",
	"Dining & Coffee",
	"Shopping",
	"Clothing",
	"Transportation",
	"Entertainment",
	"Subscriptions",
	"Health & Medical",
	"Insurance",
	"Fitness & Wellness",
	"Education",
	"Travel",
	"Pets",
	"Cash & ATM",
	"Personal Care",
	"Transfers",
	"Other",
}

// FixedCategorySet indexes FixedCategories for membership checks.
var FixedCategorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(FixedCategories))
	for _, c := range FixedCategories {
		m[c] = struct{}{}
	}
	return m
}()

// IsFixedCategory reports whether name is a member of the fixed enumeration.
func IsFixedCategory(name string) bool {
	_, ok := FixedCategorySet[name]
	return ok
}
