package manager

import (
	"strings"

	"menuboard/internal/catalog"
)

// Filter recomputes the visible subset from the full snapshot. An item
// passes when its name contains the search term case-insensitively (or
// the term is empty) and its category matches the selection exactly
// (or no category is selected).
func Filter(items []catalog.MenuItem, term, category string) []catalog.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))

	var visible []catalog.MenuItem
	for _, item := range items {
		if term != "" && !strings.Contains(strings.ToLower(item.Item), term) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}
