// Package label extracts weight and volume suffixes from item display
// names. Names arrive from the catalog with quantity markers embedded
// in a handful of fixed formats ("12 fl oz cup (310 g)", "8.9 oz
// (251 g)", "1 cookie (33 g)"); extraction separates the clean name
// from the quantity so views can render them independently.
package label

import (
	"regexp"
	"strings"

	"menuboard/internal/catalog"
)

// Result carries the cleaned display name and the extracted quantity.
// Quantity is empty when no pattern matched.
type Result struct {
	Name     string
	Quantity string
}

// Rule is one entry in an ordered extraction cascade. The first rule
// whose gate passes and whose pattern matches wins. Quantity builds
// the display quantity from the submatches; it may consult the item's
// category when the unit choice depends on it.
type Rule struct {
	pattern  *regexp.Regexp
	quantity func(m []string, category string) string
	gate     func(category string) bool
}

var collapseSpaces = regexp.MustCompile(`\s{2,}`)

// Extract runs the cascade over the raw name. It never fails: an
// unmatched name comes back unchanged with an empty quantity, and
// re-running on an already-cleaned name is a no-op.
func Extract(rules []Rule, name, category string) Result {
	for _, r := range rules {
		if r.gate != nil && !r.gate(category) {
			continue
		}
		loc := r.pattern.FindStringIndex(name)
		if loc == nil {
			continue
		}
		m := r.pattern.FindStringSubmatch(name)
		clean := name[:loc[0]] + name[loc[1]:]
		return Result{
			Name:     tidy(clean),
			Quantity: r.quantity(m, category),
		}
	}
	return Result{Name: name}
}

// tidy collapses the hole the removed suffix leaves behind.
func tidy(name string) string {
	name = collapseSpaces.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	return strings.TrimRight(name, " ,-")
}

func notBeverageLike(category string) bool {
	return !catalog.IsBeverageLike(category)
}

// ManagerRules is the cascade used by the manager card view. Order
// matters: fluid-ounce forms outrank plain-ounce forms, and the
// bare-grams rules only apply outside beverage-like categories.
var ManagerRules = []Rule{
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*fl\s*oz\s*cup\s*\(\s*\d+(?:\.\d+)?\s*g\s*\)`),
		quantity: func(m []string, _ string) string {
			return m[1] + " fl oz"
		},
	},
	{
		pattern: regexp.MustCompile(`\(\s*(\d+(?:\.\d+)?)\s*fl\s*oz\s*cup\s*\)`),
		quantity: func(m []string, _ string) string {
			return m[1] + " fl oz"
		},
	},
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*fl\s*oz\b`),
		quantity: func(m []string, _ string) string {
			return m[1] + " fl oz"
		},
	},
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*oz\s*\(\s*(\d+(?:\.\d+)?)\s*g\s*\)`),
		quantity: func(m []string, category string) string {
			if catalog.IsBeverageLike(category) {
				return m[1] + " oz"
			}
			return m[2] + " g"
		},
	},
	{
		pattern: regexp.MustCompile(`\d+(?:\.\d+)?\s*cookie\s*\(\s*(\d+(?:\.\d+)?)\s*g\s*\)`),
		quantity: func(m []string, _ string) string {
			return m[1] + " g"
		},
	},
	{
		pattern: regexp.MustCompile(`\(\s*(\d+(?:\.\d+)?)\s*g\s*\)`),
		gate:    notBeverageLike,
		quantity: func(m []string, _ string) string {
			return m[1] + " g"
		},
	},
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*g\b`),
		gate:    notBeverageLike,
		quantity: func(m []string, _ string) string {
			return m[1] + " g"
		},
	},
}

// PublicRules is the cascade used by the public listing view. It is
// deliberately not the manager cascade: the listing keeps combined
// ounce-and-gram quantities where the manager view picks one unit.
// The two tables drifted apart in the original views and their
// outputs are tuned to different display contexts, so they stay
// separate named configurations.
var PublicRules = []Rule{
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*oz\s*\(\s*(\d+(?:\.\d+)?)\s*g\s*\)`),
		quantity: func(m []string, _ string) string {
			return m[1] + " oz (" + m[2] + " g)"
		},
	},
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*fl\s*oz\s*cup\s*\(\s*\d+(?:\.\d+)?\s*g\s*\)`),
		quantity: func(m []string, _ string) string {
			return m[1] + " fl oz"
		},
	},
	{
		pattern: regexp.MustCompile(`\(\s*(\d+(?:\.\d+)?)\s*g\s*\)`),
		quantity: func(m []string, _ string) string {
			return m[1] + " g"
		},
	},
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*fl\s*oz\b(?:\s*cup\b)?`),
		quantity: func(m []string, _ string) string {
			return m[1] + " fl oz"
		},
	},
	{
		pattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*oz\b`),
		quantity: func(m []string, _ string) string {
			return m[1] + " oz"
		},
	},
}
