package cart

import "github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"

// Line is one selected item and how many of it.
// The item is snapshotted so a placed order keeps the price it was sold at.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Cart aggregates selections in first-seen order, at most one line per item.
// Cart is not safe for concurrent use; the session serializes access to it.
type Cart struct {
	lines []Line
}

// Add puts one unit of the item in the cart, incrementing the existing
// line if the item is already present.
func (c *Cart) Add(item catalog.Item) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// SetQuantity replaces a line's quantity. A quantity of zero or less
// removes the line; lines never hold a non-positive quantity.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for the item. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines. Callers may keep the copy
// across later mutations; checkout depends on that.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total recomputes the rupee total on every call.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.lines {
		total += line.Item.Price * line.Quantity
	}
	return total
}

// Count recomputes the number of units on every call.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}
