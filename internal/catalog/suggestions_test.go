package catalog

import "testing"

func TestPairSuggestions_BreakfastGetsChaiAndCoffee(t *testing.T) {
	items := SeedItems()
	dosa, _ := findByID(items, "b1")

	suggestions := PairSuggestions(dosa, items)
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Items[0].ID != "d1" {
		t.Errorf("expected chai first, got %s", suggestions[0].Items[0].ID)
	}
	if suggestions[1].Items[0].ID != "d2" {
		t.Errorf("expected coffee second, got %s", suggestions[1].Items[0].ID)
	}
}

func TestPairSuggestions_LunchGetsButtermilkAndLassi(t *testing.T) {
	items := SeedItems()
	meals, _ := findByID(items, "l1")

	suggestions := PairSuggestions(meals, items)
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Items[0].ID != "d5" {
		t.Errorf("expected buttermilk first, got %s", suggestions[0].Items[0].ID)
	}
}

func TestPairSuggestions_DrinksGetNothing(t *testing.T) {
	items := SeedItems()
	chai, _ := findByID(items, "d1")

	if got := PairSuggestions(chai, items); len(got) != 0 {
		t.Fatalf("expected no suggestions for a drink, got %d", len(got))
	}
}

func findByID(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
