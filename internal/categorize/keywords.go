package categorize

// keywordBucket pairs a target category with the description keywords that
// route to it. Buckets are evaluated in order; the first hit wins.
type keywordBucket struct {
	category string
	keywords []string
}

var diningKeywords = []string{
	"subway", "wendys", "kfc", "mcdonald", "taco bell", "olive garden",
	"chipotle", "panera", "shake shack", "five guys", "outback", "pf chang",
	"texas roadhouse", "red lobster", "burger king", "chick-fil-a",
	"cheesecake factory", "dunkin", "starbucks", "caribou", "blue bottle",
	"peets", "doordash", "grubhub", "postmates", "uber eats",
}

var shoppingKeywords = []string{
	"amazon", "apple store", "best buy", "target", "costco", "walmart",
	"kohls", "homegoods", "tj maxx", "marshalls", "ross", "nordstrom",
	"sephora", "ulta", "adidas", "zara", "h&m", "gap", "old navy", "uniqlo",
	"macys",
}

var homeMaintenanceKeywords = []string{
	"lowes", "home depot", "ace hardware", "ikea", "menards",
}

var transportKeywords = []string{
	"uber", "lyft", "parkmobile", "metro transit", "bus fare", "train ticket",
	"airport parking", "parking", "shell", "exxon", "bp ", "chevron",
	"sunoco", "mobil ", "getgo", "speedway", "wawa",
}

var subscriptionKeywords = []string{
	"spotify", "hulu", "disney", "hbo", "amazon prime", "youtube premium",
	"google fi",
}

var fitnessKeywords = []string{
	"equinox", "soulcycle", "yoga", "fitness", "24 hour fitness",
}

var healthKeywords = []string{
	"urgent care", "doctor", "dentist", "lab test", "physical therapy",
	"copay", "vet clinic", "pharmacy", "cvs", "walgreens", "rite aid",
}

var insuranceKeywords = []string{
	"insurance", "premium", "life insurance", "renters insurance",
	"car insurance",
}

var travelKeywords = []string{
	"marriott", "southwest", "airlines", "hotel",
}

var personalCareKeywords = []string{
	"barber", "nail", "spa", "hair",
}

// fallbackBuckets run when the raw category has no direct mapping (or maps
// to "Other"). Order matters: dining before shopping so "uber eats" never
// lands in Transportation via "uber".
var fallbackBuckets = []keywordBucket{
	{"Dining & Coffee", diningKeywords},
	{"Subscriptions", subscriptionKeywords},
	{"Fitness & Wellness", fitnessKeywords},
	{"Health & Medical", healthKeywords},
	{"Insurance", insuranceKeywords},
	{"Travel", travelKeywords},
	{"Home Maintenance", homeMaintenanceKeywords},
	{"Shopping", shoppingKeywords},
	{"Transportation", transportKeywords},
}

// directMappings translates raw statement categories to fixed categories.
var directMappings = map[string]string{
	"Groceries":               "Groceries",
	"Coffee Shops":            "Dining & Coffee",
	"Dining Out":              "Dining & Coffee",
	"Food Delivery":           "Dining & Coffee",
	"Gas/Fuel":                "Transportation",
	"Rideshare":               "Transportation",
	"Public Transit":          "Transportation",
	"Parking":                 "Transportation",
	"Utilities":               "Utilities & Bills",
	"Internet/Phone":          "Utilities & Bills",
	"Streaming/Subscriptions": "Subscriptions",
	"Online/Retail Shopping":  "Shopping",
	"Clothing":                "Clothing",
	"Personal Care":           "Personal Care",
	"Pharmacy":                "Health & Medical",
	"Healthcare":              "Health & Medical",
	"Pet Care":                "Pets",
	"Movies/Entertainment":    "Entertainment",
	"Education":               "Education",
	"Insurance":               "Insurance",
	"Travel/Hotel":            "Travel",
	"Airfare":                 "Travel",
	"ATM Withdrawal":          "Cash & ATM",
	"Home EMI":                "Housing & Rent",
	"Car EMI":                 "Debt Payments",
	"Personal Loan EMI":       "Debt Payments",
	"Home Improvement":        "Home Maintenance",
}
