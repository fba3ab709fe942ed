package catalog

import "testing"

func TestFilterByAllergens_EmptySetIsIdentity(t *testing.T) {
	items := SeedItems()

	filtered := FilterByAllergens(items, ExclusionSet{})
	if len(filtered) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(filtered))
	}

	for i := range items {
		if filtered[i].ID != items[i].ID {
			t.Fatalf("order changed at index %d: %s != %s", i, filtered[i].ID, items[i].ID)
		}
	}
}

func TestFilterByAllergens_RemovesTaggedItems(t *testing.T) {
	items := SeedItems()
	exclusions := NewExclusionSet([]string{"milk", "gluten"})

	filtered := FilterByAllergens(items, exclusions)
	if len(filtered) == 0 {
		t.Fatal("expected some allergen-free items in the seed menu")
	}

	for _, item := range filtered {
		for _, tag := range item.Allergens {
			if exclusions[tag] {
				t.Fatalf("item %s carries excluded allergen %s", item.ID, tag)
			}
		}
	}
}

func TestFilterByAllergens_PreservesOrder(t *testing.T) {
	items := []Item{
		{ID: "a", Allergens: []Allergen{}},
		{ID: "b", Allergens: []Allergen{AllergenEggs}},
		{ID: "c", Allergens: []Allergen{}},
	}

	filtered := FilterByAllergens(items, NewExclusionSet([]string{"eggs"}))
	if len(filtered) != 2 {
		t.Fatalf("expected 2 items, got %d", len(filtered))
	}
	if filtered[0].ID != "a" || filtered[1].ID != "c" {
		t.Fatalf("unexpected order: %s, %s", filtered[0].ID, filtered[1].ID)
	}
}

func TestNewExclusionSet_DropsUnknownTags(t *testing.T) {
	set := NewExclusionSet([]string{"milk", "kryptonite"})

	if len(set) != 1 {
		t.Fatalf("expected 1 known allergen, got %d", len(set))
	}
	if !set[AllergenMilk] {
		t.Fatal("expected milk to be excluded")
	}
}
