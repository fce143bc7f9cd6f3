package catalog

import "strings"

// CategoryOrder fixes the display order of the known category keys.
// The public view renders one section per key in this order.
var CategoryOrder = []string{
	"BREAKFAST",
	"BEEFPORK",
	"CHICKENFISH",
	"SALAD",
	"SNACKSIDE",
	"DESSERTSHAKE",
	"BEVERAGE",
	"COFFEE",
	"CONDIMENT",
}

var displayNames = map[string]string{
	"BREAKFAST":    "Breakfast",
	"BEEFPORK":     "Beef & Pork",
	"CHICKENFISH":  "Chicken & Fish",
	"SALAD":        "Salads",
	"SNACKSIDE":    "Snacks & Sides",
	"DESSERTSHAKE": "Desserts & Shakes",
	"BEVERAGE":     "Beverages",
	"COFFEE":       "Coffee & Tea",
	"CONDIMENT":    "Condiments",
}

// beverageLike holds the categories whose items quote fluid measures.
// Weight extraction prefers ounces over grams for these.
var beverageLike = map[string]bool{
	"BEVERAGE":     true,
	"CONDIMENT":    true,
	"DESSERTSHAKE": true,
}

// FormatCategoryName maps a raw category key to its display label.
// Keys are case-sensitive; unknown keys fall through to a generic
// title-cased rendering so new upstream categories still display.
func FormatCategoryName(category string) string {
	if name, ok := displayNames[category]; ok {
		return name
	}
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(category, "_", " ")))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return category
	}
	return strings.Join(words, " ")
}

// IsBeverageLike reports whether the category quotes fluid measures.
func IsBeverageLike(category string) bool {
	return beverageLike[category]
}

// KnownCategory reports whether the key belongs to the fixed enumeration.
func KnownCategory(category string) bool {
	_, ok := displayNames[category]
	return ok
}
