package cart

import (
	"testing"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

func samosa() catalog.Item {
	return catalog.Item{ID: "s1", Name: "Samosa", Price: 15, PrepTimeMinutes: 3}
}

func chai() catalog.Item {
	return catalog.Item{ID: "d1", Name: "Masala Chai", Price: 10, PrepTimeMinutes: 3}
}

func TestAdd_IncrementsExistingLine(t *testing.T) {
	var c Cart
	c.Add(samosa())
	c.Add(chai())
	c.Add(samosa())

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Item.ID != "s1" || lines[0].Quantity != 2 {
		t.Fatalf("expected samosa x2 first, got %s x%d", lines[0].Item.ID, lines[0].Quantity)
	}
	if lines[1].Item.ID != "d1" || lines[1].Quantity != 1 {
		t.Fatalf("expected chai x1 second, got %s x%d", lines[1].Item.ID, lines[1].Quantity)
	}
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	var c Cart
	c.Add(samosa())
	c.SetQuantity("s1", 0)

	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}

	c.Add(samosa())
	c.SetQuantity("s1", -3)
	if c.Len() != 0 {
		t.Fatal("negative quantity should remove the line")
	}
}

func TestSetQuantity_ReplacesQuantity(t *testing.T) {
	var c Cart
	c.Add(samosa())
	c.SetQuantity("s1", 4)

	if got := c.Count(); got != 4 {
		t.Fatalf("expected count 4, got %d", got)
	}
	if got := c.Total(); got != 60 {
		t.Fatalf("expected total 60, got %d", got)
	}
}

func TestRemove_AbsentItemIsNoOp(t *testing.T) {
	var c Cart
	c.Add(samosa())
	c.Remove("nope")

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
}

func TestTotalAndCount_RecomputedFromLines(t *testing.T) {
	var c Cart
	c.Add(samosa())
	c.Add(samosa())
	c.Add(chai())
	c.Remove("s1")
	c.Add(chai())

	want := 0
	count := 0
	for _, line := range c.Lines() {
		want += line.Item.Price * line.Quantity
		count += line.Quantity
	}

	if got := c.Total(); got != want || got < 0 {
		t.Fatalf("total mismatch: got %d, want %d", got, want)
	}
	if got := c.Count(); got != count {
		t.Fatalf("count mismatch: got %d, want %d", got, count)
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(samosa())
	c.Clear()

	if c.Len() != 0 || c.Total() != 0 || c.Count() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestLines_ReturnsACopy(t *testing.T) {
	var c Cart
	c.Add(samosa())

	snapshot := c.Lines()
	c.SetQuantity("s1", 9)

	if snapshot[0].Quantity != 1 {
		t.Fatalf("snapshot mutated: quantity %d", snapshot[0].Quantity)
	}
}
