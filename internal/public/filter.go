package public

import "menuboard/internal/catalog"

// Filter holds the public view's active selection. At most one
// category and one nutrition filter are active at a time; the rendered
// filter bar marks exactly one category button active (the "all"
// button when no category is selected).
type Filter struct {
	category  string
	nutrition string
}

// SetCategoryFilter activates a single category. Unknown keys are
// ignored so a crafted query string cannot produce a phantom section.
func (f *Filter) SetCategoryFilter(category string) {
	if !catalog.KnownCategory(category) {
		return
	}
	f.category = category
}

// ClearCategoryFilter drops the category selection.
func (f *Filter) ClearCategoryFilter() {
	f.category = ""
}

// ShowAllCategories resets the view to the unfiltered listing.
func (f *Filter) ShowAllCategories() {
	f.category = ""
	f.nutrition = ""
}

// SetNutritionFilter activates a nutrition highlight by filter name.
// Unknown names clear the highlight.
func (f *Filter) SetNutritionFilter(name string) {
	f.nutrition = name
}

// Category returns the active category key, empty when showing all.
func (f *Filter) Category() string {
	return f.category
}

// Nutrition returns the active nutrition filter name, empty when none.
func (f *Filter) Nutrition() string {
	return f.nutrition
}

// FilterButton is one entry in the rendered category filter bar.
type FilterButton struct {
	Key    string
	Label  string
	Active bool
}

// Buttons renders the filter bar state: the "all" pseudo-button plus
// one button per known category, with exactly one marked active.
func (f *Filter) Buttons() []FilterButton {
	buttons := []FilterButton{{
		Key:    "",
		Label:  "All",
		Active: f.category == "",
	}}
	for _, key := range catalog.CategoryOrder {
		buttons = append(buttons, FilterButton{
			Key:    key,
			Label:  catalog.FormatCategoryName(key),
			Active: f.category == key,
		})
	}
	return buttons
}
