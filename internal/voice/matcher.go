package voice

import (
	"strings"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

// Match is an intent resolved to a concrete menu item.
type Match struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// MatchIntents resolves intents against the menu. An item matches when
// its lowercased name contains the raw name, or the raw name contains
// the first word of the item's name ("masala" for "Masala Dosa"). The
// first item in catalog order wins; there is no scoring, so a name
// shared by two items always resolves to the earlier one. Intents that
// match nothing are dropped.
func MatchIntents(intents []Intent, items []catalog.Item) []Match {
	var matches []Match

	for _, intent := range intents {
		raw := strings.ToLower(intent.RawName)
		for _, item := range items {
			name := strings.ToLower(item.Name)
			firstWord := strings.SplitN(name, " ", 2)[0]

			if strings.Contains(name, raw) || strings.Contains(raw, firstWord) {
				matches = append(matches, Match{Item: item, Quantity: intent.Quantity})
				break
			}
		}
	}

	return matches
}
