package catalog

import "fmt"

// Suggestion pairs a menu item with a nudge message shown next to the
// item the student just picked.
type Suggestion struct {
	Items   []Item `json:"items"`
	Message string `json:"message"`
	Savings int    `json:"savings"`
}

// The pairing table is keyed by seed item ids: chai and coffee ride
// along with breakfast and snacks, buttermilk and lassi with lunch.
const (
	chaiID       = "d1"
	coffeeID     = "d2"
	lassiID      = "d3"
	buttermilkID = "d5"
)

// PairSuggestions returns up to two drink pairings for the selected item.
func PairSuggestions(selected Item, items []Item) []Suggestion {
	var suggestions []Suggestion

	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	switch selected.Category {
	case CategoryBreakfast, CategorySnacks:
		if tea, ok := byID[chaiID]; ok {
			suggestions = append(suggestions, Suggestion{
				Items:   []Item{tea},
				Message: fmt.Sprintf("Add %s for a complete meal!", tea.Name),
			})
		}
		if coffee, ok := byID[coffeeID]; ok {
			suggestions = append(suggestions, Suggestion{
				Items:   []Item{coffee},
				Message: fmt.Sprintf("Pair with %s - perfect combo!", coffee.Name),
			})
		}
	case CategoryLunch:
		if buttermilk, ok := byID[buttermilkID]; ok {
			suggestions = append(suggestions, Suggestion{
				Items:   []Item{buttermilk},
				Message: fmt.Sprintf("Cool down with %s!", buttermilk.Name),
				Savings: 2,
			})
		}
		if lassi, ok := byID[lassiID]; ok {
			suggestions = append(suggestions, Suggestion{
				Items:   []Item{lassi},
				Message: fmt.Sprintf("Complete your meal with %s!", lassi.Name),
			})
		}
	}

	if len(suggestions) > 2 {
		suggestions = suggestions[:2]
	}
	return suggestions
}
