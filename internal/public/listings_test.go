package public

import (
	"testing"

	"menuboard/internal/catalog"
)

func strptr(s string) *string { return &s }

func listingFixture() []catalog.MenuItem {
	return []catalog.MenuItem{
		{ID: "1", Item: "Grilled Chicken Sandwich", Category: "CHICKENFISH", Protein: strptr("28")},
		{ID: "2", Item: "Hash Browns (56 g)", Category: "BREAKFAST", Protein: strptr("1")},
		{ID: "3", Item: "Side Salad", Category: "SALAD", Fiber: strptr("1")},
		{ID: "4", Item: "Mystery Special", Category: "LIMITED", Protein: strptr("30")},
	}
}

func TestBuildListingsGroupsInDisplayOrder(t *testing.T) {
	filter := &Filter{}
	sections := BuildListings(listingFixture(), filter, nil)

	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	// Known categories in enumeration order, unknown ones at the end.
	want := []string{"BREAKFAST", "CHICKENFISH", "SALAD", "LIMITED"}
	for i, category := range want {
		if sections[i].Category != category {
			t.Errorf("section %d: got %s, want %s", i, sections[i].Category, category)
		}
	}

	if sections[3].Label != "Limited" {
		t.Errorf("unknown category label: got %q", sections[3].Label)
	}
}

func TestBuildListingsCategoryFilter(t *testing.T) {
	filter := &Filter{}
	filter.SetCategoryFilter("SALAD")

	sections := BuildListings(listingFixture(), filter, nil)
	if len(sections) != 1 || sections[0].Category != "SALAD" {
		t.Fatalf("expected only the SALAD section, got %+v", sections)
	}
}

func TestBuildListingsHighlightBadges(t *testing.T) {
	filter := &Filter{}
	filter.SetNutritionFilter("high-protein")

	sections := BuildListings(listingFixture(), filter, nil)

	badges := make(map[string]string)
	for _, s := range sections {
		for _, item := range s.Items {
			badges[item.ID] = item.Badge
		}
	}

	if badges["1"] != "High Protein" {
		t.Errorf("28g protein should earn the badge, got %q", badges["1"])
	}
	if badges["2"] != "" {
		t.Errorf("1g protein should not earn the badge, got %q", badges["2"])
	}
	if badges["3"] != "" {
		t.Errorf("absent protein should not earn the badge, got %q", badges["3"])
	}
}

func TestBuildListingsCleansNames(t *testing.T) {
	filter := &Filter{}
	sections := BuildListings(listingFixture(), filter, nil)

	for _, s := range sections {
		if s.Category != "BREAKFAST" {
			continue
		}
		if s.Items[0].Name != "Hash Browns" {
			t.Errorf("got %q, want cleaned name", s.Items[0].Name)
		}
		if s.Items[0].Quantity != "56 g" {
			t.Errorf("got quantity %q", s.Items[0].Quantity)
		}
	}
}

func TestFilterButtonsExactlyOneActive(t *testing.T) {
	filter := &Filter{}
	filter.ShowAllCategories()

	countActive := func() int {
		n := 0
		for _, b := range filter.Buttons() {
			if b.Active {
				n++
			}
		}
		return n
	}

	if got := countActive(); got != 1 {
		t.Errorf("all-categories state: %d active buttons", got)
	}

	filter.SetCategoryFilter("BEVERAGE")
	if got := countActive(); got != 1 {
		t.Errorf("category state: %d active buttons", got)
	}

	filter.SetCategoryFilter("NOT_A_CATEGORY")
	if filter.Category() != "BEVERAGE" {
		t.Error("unknown category must not replace the selection")
	}

	filter.ClearCategoryFilter()
	if got := countActive(); got != 1 {
		t.Errorf("cleared state: %d active buttons", got)
	}
	if !filter.Buttons()[0].Active {
		t.Error("the All button must be active after clearing")
	}
}
