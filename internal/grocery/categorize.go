// Package grocery provides local keyword auto-categorization for manually
// added items. Scanned items are categorized by the external classifier;
// this fallback keeps manual adds organized without a network round trip.
package grocery

import "strings"

// Categorize returns the grocery category for the given item name.
// Case-insensitive: exact match first, then substring match. Falls back
// to "Other".
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "Other"
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Substring entries are ordered longer/more-specific first.
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return "Other"
}

var exactMatch = map[string]string{
	"apple":    "Produce",
	"apples":   "Produce",
	"banana":   "Produce",
	"bananas":  "Produce",
	"tomato":   "Produce",
	"tomatoes": "Produce",
	"potato":   "Produce",
	"potatoes": "Produce",
	"onion":    "Produce",
	"onions":   "Produce",
	"garlic":   "Produce",
	"lettuce":  "Produce",
	"spinach":  "Produce",
	"broccoli": "Produce",
	"carrots":  "Produce",
	"avocado":  "Produce",

	"milk":       "Dairy",
	"eggs":       "Dairy",
	"butter":     "Dairy",
	"cheese":     "Dairy",
	"yogurt":     "Dairy",
	"sour cream": "Dairy",

	"chicken": "Meat & Seafood",
	"beef":    "Meat & Seafood",
	"pork":    "Meat & Seafood",
	"turkey":  "Meat & Seafood",
	"bacon":   "Meat & Seafood",
	"salmon":  "Meat & Seafood",
	"shrimp":  "Meat & Seafood",

	"bread":     "Bakery",
	"bagels":    "Bakery",
	"tortillas": "Bakery",

	"rice":          "Pantry",
	"pasta":         "Pantry",
	"flour":         "Pantry",
	"sugar":         "Pantry",
	"salt":          "Pantry",
	"olive oil":     "Pantry",
	"cereal":        "Pantry",
	"peanut butter": "Pantry",

	"ice cream": "Frozen",

	"water":  "Beverages",
	"coffee": "Beverages",
	"tea":    "Beverages",
	"juice":  "Beverages",

	"chips":    "Snacks",
	"crackers": "Snacks",
	"cookies":  "Snacks",

	"paper towels": "Household",
	"toilet paper": "Household",
	"trash bags":   "Household",
	"dish soap":    "Household",

	"shampoo":    "Personal Care",
	"toothpaste": "Personal Care",
	"deodorant":  "Personal Care",
}

type substringEntry struct {
	keyword  string
	category string
}

var substringMatches = []substringEntry{
	// Cross-category phrases that would otherwise hit a generic keyword
	// from the wrong category.
	{"ice cream", "Frozen"},
	{"peanut butter", "Pantry"},
	{"sour cream", "Dairy"},

	{"chicken breast", "Meat & Seafood"},
	{"ground beef", "Meat & Seafood"},
	{"ground turkey", "Meat & Seafood"},
	{"hot dog", "Meat & Seafood"},

	{"cream cheese", "Dairy"},
	{"greek yogurt", "Dairy"},
	{"almond milk", "Dairy"},
	{"oat milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},
	{"egg", "Dairy"},

	{"sweet potato", "Produce"},
	{"bell pepper", "Produce"},
	{"berries", "Produce"},
	{"berry", "Produce"},
	{"fruit", "Produce"},
	{"lettuce", "Produce"},
	{"apple", "Produce"},
	{"banana", "Produce"},
	{"tomato", "Produce"},
	{"potato", "Produce"},
	{"onion", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},

	{"sourdough", "Bakery"},
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"tortilla", "Bakery"},
	{"bun", "Bakery"},
	{"roll", "Bakery"},

	{"olive oil", "Pantry"},
	{"pasta sauce", "Pantry"},
	{"canned", "Pantry"},
	{"cereal", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"flour", "Pantry"},
	{"sugar", "Pantry"},
	{"sauce", "Pantry"},
	{"broth", "Pantry"},
	{"soup", "Pantry"},
	{"bean", "Pantry"},

	{"frozen", "Frozen"},

	{"sparkling water", "Beverages"},
	{"coffee", "Beverages"},
	{"juice", "Beverages"},
	{"soda", "Beverages"},
	{"water", "Beverages"},
	{"tea", "Beverages"},

	{"granola bar", "Snacks"},
	{"chip", "Snacks"},
	{"cracker", "Snacks"},
	{"cookie", "Snacks"},
	{"candy", "Snacks"},
	{"chocolate", "Snacks"},
	{"snack", "Snacks"},

	{"paper towel", "Household"},
	{"toilet paper", "Household"},
	{"trash bag", "Household"},
	{"detergent", "Household"},
	{"cleaner", "Household"},

	{"shampoo", "Personal Care"},
	{"toothpaste", "Personal Care"},
	{"lotion", "Personal Care"},
	{"razor", "Personal Care"},
}
