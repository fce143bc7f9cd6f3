// Package nutrition defines the canonical nutrition column set and the
// thresholds behind the public view's highlight badges.
package nutrition

import (
	"strconv"
	"strings"
)

// Field describes one nutrition column: the key the catalog API uses,
// the label views render, and the unit suffix for grid rows.
type Field struct {
	Key   string
	Label string
	Unit  string
}

// Fields is the canonical column order. Renderers walk this slice and
// skip columns absent on a record.
var Fields = []Field{
	{Key: "CAL", Label: "Calories", Unit: ""},
	{Key: "FAT", Label: "Total Fat", Unit: "g"},
	{Key: "SFAT", Label: "Saturated Fat", Unit: "g"},
	{Key: "TFAT", Label: "Trans Fat", Unit: "g"},
	{Key: "CHOL", Label: "Cholesterol", Unit: "mg"},
	{Key: "SALT", Label: "Sodium", Unit: "mg"},
	{Key: "CARB", Label: "Carbohydrates", Unit: "g"},
	{Key: "FBR", Label: "Fiber", Unit: "g"},
	{Key: "SGR", Label: "Sugars", Unit: "g"},
	{Key: "PRO", Label: "Protein", Unit: "g"},
}

// Highlight ties a public-view filter name to the metric and threshold
// that earn an item its badge.
type Highlight struct {
	Filter    string
	Key       string
	Badge     string
	Threshold float64
	// AtLeast selects the comparison direction: value >= Threshold
	// qualifies when true, value <= Threshold when false.
	AtLeast bool
}

// Highlights enumerates the supported nutrition filters.
var Highlights = []Highlight{
	{Filter: "high-protein", Key: "PRO", Badge: "High Protein", Threshold: 20, AtLeast: true},
	{Filter: "high-fiber", Key: "FBR", Badge: "High Fiber", Threshold: 5, AtLeast: true},
	{Filter: "low-carb", Key: "CARB", Badge: "Low Carb", Threshold: 20, AtLeast: false},
	{Filter: "low-sugar", Key: "SGR", Badge: "Low Sugar", Threshold: 10, AtLeast: false},
	{Filter: "low-calorie", Key: "CAL", Badge: "Low Calorie", Threshold: 400, AtLeast: false},
}

// ByFilter resolves a filter name to its highlight definition.
func ByFilter(name string) (Highlight, bool) {
	for _, h := range Highlights {
		if h.Filter == name {
			return h, true
		}
	}
	return Highlight{}, false
}

// Qualifies reports whether a raw numeric-string value crosses the
// highlight's threshold. Absent or unparseable values never qualify.
func (h Highlight) Qualifies(raw string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false
	}
	if h.AtLeast {
		return v >= h.Threshold
	}
	return v <= h.Threshold
}
