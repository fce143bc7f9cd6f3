package public

import (
	"sort"

	"menuboard/internal/catalog"
	"menuboard/internal/label"
	"menuboard/internal/nutrition"
)

// ItemView is one rendered menu entry in a category section.
type ItemView struct {
	ID       string
	Name     string
	Quantity string
	ImageURL string
	Badge    string
}

// Section is one category block of the public listing.
type Section struct {
	Category string
	Label    string
	Items    []ItemView
}

// ImageResolver maps an item id to a displayable image URL.
type ImageResolver interface {
	URLFor(itemID string) string
}

// BuildListings groups items by category and renders them as ordered
// sections: known categories in enumeration order, unknown ones
// appended alphabetically. When the filter selects a category only
// that section is built; when it selects a nutrition highlight, items
// crossing the threshold carry its badge.
func BuildListings(items []catalog.MenuItem, filter *Filter, images ImageResolver) []Section {
	grouped := make(map[string][]catalog.MenuItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	keys := orderedCategories(grouped)
	active := filter.Category()

	var sections []Section
	for _, key := range keys {
		if active != "" && key != active {
			continue
		}
		sections = append(sections, buildSection(key, grouped[key], filter, images))
	}
	return sections
}

// buildSection renders one category of items under the active filter.
func buildSection(category string, items []catalog.MenuItem, filter *Filter, images ImageResolver) Section {
	section := Section{
		Category: category,
		Label:    catalog.FormatCategoryName(category),
	}

	highlight, highlighting := nutrition.ByFilter(filter.Nutrition())

	for _, item := range items {
		extracted := label.Extract(label.PublicRules, item.Item, item.Category)

		view := ItemView{
			ID:       item.ID,
			Name:     extracted.Name,
			Quantity: extracted.Quantity,
		}
		if images != nil {
			view.ImageURL = images.URLFor(item.ID)
		}
		if highlighting {
			if value, ok := item.Nutrient(highlight.Key); ok && highlight.Qualifies(value) {
				view.Badge = highlight.Badge
			}
		}

		section.Items = append(section.Items, view)
	}

	return section
}

// orderedCategories returns present categories in display order, with
// categories outside the enumeration sorted alphabetically at the end.
func orderedCategories(grouped map[string][]catalog.MenuItem) []string {
	var keys []string
	for _, key := range catalog.CategoryOrder {
		if _, ok := grouped[key]; ok {
			keys = append(keys, key)
		}
	}

	var unknown []string
	for key := range grouped {
		if !catalog.KnownCategory(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	return append(keys, unknown...)
}
