package voice

import "testing"

func TestParseOrder_DigitsAndWords(t *testing.T) {
	intents := ParseOrder("2 dosas and 1 tea")

	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].Quantity != 2 || intents[0].RawName != "dosa" {
		t.Fatalf("expected 2 dosa, got %d %q", intents[0].Quantity, intents[0].RawName)
	}
	if intents[1].Quantity != 1 || intents[1].RawName != "tea" {
		t.Fatalf("expected 1 tea, got %d %q", intents[1].Quantity, intents[1].RawName)
	}
}

func TestParseOrder_Articles(t *testing.T) {
	intents := ParseOrder("a samosa")

	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(intents))
	}
	if intents[0].Quantity != 1 || intents[0].RawName != "samosa" {
		t.Fatalf("expected 1 samosa, got %d %q", intents[0].Quantity, intents[0].RawName)
	}
}

func TestParseOrder_NumberWords(t *testing.T) {
	intents := ParseOrder("three vada pavs, two lassis")

	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].Quantity != 3 || intents[0].RawName != "vada pav" {
		t.Fatalf("got %d %q", intents[0].Quantity, intents[0].RawName)
	}
	if intents[1].Quantity != 2 || intents[1].RawName != "lassi" {
		t.Fatalf("got %d %q", intents[1].Quantity, intents[1].RawName)
	}
}

func TestParseOrder_BareNameDefaultsToOne(t *testing.T) {
	intents := ParseOrder("Filter Coffee")

	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(intents))
	}
	if intents[0].Quantity != 1 || intents[0].RawName != "filter coffee" {
		t.Fatalf("got %d %q", intents[0].Quantity, intents[0].RawName)
	}
}

func TestParseOrder_PreservesClauseOrder(t *testing.T) {
	intents := ParseOrder("1 chai and 1 samosa and 1 chai")

	want := []string{"chai", "samosa", "chai"}
	if len(intents) != len(want) {
		t.Fatalf("expected %d intents, got %d", len(want), len(intents))
	}
	for i, name := range want {
		if intents[i].RawName != name {
			t.Fatalf("intent %d: got %q, want %q", i, intents[i].RawName, name)
		}
	}
}

func TestParseOrder_DropsEmptyClauses(t *testing.T) {
	if got := ParseOrder("   "); len(got) != 0 {
		t.Fatalf("expected no intents for blank input, got %d", len(got))
	}
	if got := ParseOrder("chai, , coffee"); len(got) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(got))
	}
}

func TestParseOrder_SingularizationIsOneTrailingS(t *testing.T) {
	intents := ParseOrder("2 dosas and 1 lassi")

	if intents[0].RawName != "dosa" {
		t.Errorf("expected dosas -> dosa, got %q", intents[0].RawName)
	}
	// "lassi" ends in "i"; the heuristic leaves it alone
	if intents[1].RawName != "lassi" {
		t.Errorf("expected lassi untouched, got %q", intents[1].RawName)
	}
}
