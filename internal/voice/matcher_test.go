package voice

import (
	"testing"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

func TestMatchIntents_SubstringOfItemName(t *testing.T) {
	items := catalog.SeedItems()

	matches := MatchIntents([]Intent{{Quantity: 1, RawName: "chai"}}, items)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Item.Name != "Masala Chai" {
		t.Fatalf("expected Masala Chai, got %s", matches[0].Item.Name)
	}
}

func TestMatchIntents_TeaDoesNotMatchMasalaChai(t *testing.T) {
	// neither containment direction holds for "tea" vs "Masala Chai";
	// the rule is documented to miss this pair
	items := []catalog.Item{
		{ID: "d1", Name: "Masala Chai"},
	}

	if got := MatchIntents([]Intent{{Quantity: 1, RawName: "tea"}}, items); len(got) != 0 {
		t.Fatalf("expected no match, got %d", len(got))
	}
}

func TestMatchIntents_FirstWordContainment(t *testing.T) {
	items := []catalog.Item{
		{ID: "b1", Name: "Masala Dosa"},
	}

	// "masala dosa special" contains the first word "masala"
	matches := MatchIntents([]Intent{{Quantity: 2, RawName: "masala dosa special"}}, items)
	if len(matches) != 1 || matches[0].Item.ID != "b1" {
		t.Fatalf("expected first-word containment to match b1, got %v", matches)
	}
	if matches[0].Quantity != 2 {
		t.Fatalf("expected quantity carried through, got %d", matches[0].Quantity)
	}
}

func TestMatchIntents_FirstCatalogOrderWins(t *testing.T) {
	items := []catalog.Item{
		{ID: "l2", Name: "Chicken Biryani"},
		{ID: "l3", Name: "Veg Biryani"},
	}

	matches := MatchIntents([]Intent{{Quantity: 1, RawName: "biryani"}}, items)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Item.ID != "l2" {
		t.Fatalf("expected first catalog item to win, got %s", matches[0].Item.ID)
	}
}

func TestMatchIntents_UnmatchedIntentsDropped(t *testing.T) {
	items := catalog.SeedItems()

	intents := []Intent{
		{Quantity: 1, RawName: "samosa"},
		{Quantity: 1, RawName: "pizza"},
	}

	matches := MatchIntents(intents, items)
	if len(matches) != 1 {
		t.Fatalf("expected only the samosa to match, got %d matches", len(matches))
	}
	if matches[0].Item.ID != "s1" {
		t.Fatalf("expected s1, got %s", matches[0].Item.ID)
	}
}
