package manager

import (
	"embed"
	"html/template"

	"menuboard/internal/catalog"
	"menuboard/internal/label"
	"menuboard/internal/nutrition"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// cardView is one rendered menu item card.
type cardView struct {
	ID            string
	Name          string
	Quantity      string
	Category      string
	CategoryLabel string
	Facts         []factView
}

// factView is one row of the nutrition grid. Absent columns are
// omitted entirely rather than rendered blank.
type factView struct {
	Label string
	Value string
	Unit  string
}

// categoryOption is one entry of the category dropdowns.
type categoryOption struct {
	Key      string
	Label    string
	Selected bool
}

// formView prefills the item form when editing an existing record.
type formView struct {
	ID       string
	Item     string
	Category string
	// Nutrients is keyed by upstream column (CAL, FAT, ...).
	Nutrients map[string]string
}

// pageView is everything the manager page template needs.
type pageView struct {
	Unavailable bool
	Message     string
	Toast       string
	Alert       string
	Search      string
	Category    string
	Categories  []categoryOption
	Cards       []cardView
	Editing     *formView
	Fields      []nutrition.Field
}

// confirmView backs the delete confirmation page.
type confirmView struct {
	ID    string
	Name  string
	Token string
}

func buildCard(item catalog.MenuItem) cardView {
	extracted := label.Extract(label.ManagerRules, item.Item, item.Category)

	card := cardView{
		ID:            item.ID,
		Name:          extracted.Name,
		Quantity:      extracted.Quantity,
		Category:      item.Category,
		CategoryLabel: catalog.FormatCategoryName(item.Category),
	}

	for _, f := range nutrition.Fields {
		value, ok := item.Nutrient(f.Key)
		if !ok {
			continue
		}
		card.Facts = append(card.Facts, factView{
			Label: f.Label,
			Value: value,
			Unit:  f.Unit,
		})
	}

	return card
}

func buildCards(items []catalog.MenuItem) []cardView {
	cards := make([]cardView, 0, len(items))
	for _, item := range items {
		cards = append(cards, buildCard(item))
	}
	return cards
}

func categoryOptions(selected string) []categoryOption {
	options := make([]categoryOption, 0, len(catalog.CategoryOrder))
	for _, key := range catalog.CategoryOrder {
		options = append(options, categoryOption{
			Key:      key,
			Label:    catalog.FormatCategoryName(key),
			Selected: key == selected,
		})
	}
	return options
}

func buildFormView(item catalog.MenuItem) *formView {
	view := &formView{
		ID:        item.ID,
		Item:      item.Item,
		Category:  item.Category,
		Nutrients: make(map[string]string),
	}
	for _, f := range nutrition.Fields {
		if value, ok := item.Nutrient(f.Key); ok {
			view.Nutrients[f.Key] = value
		}
	}
	return view
}
