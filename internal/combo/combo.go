package combo

import (
	"sort"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

// Combo is a candidate basket of one or two items fitting a budget.
// It is recomputed on every search and never persisted.
type Combo struct {
	Items []catalog.Item `json:"items"`
	Total int            `json:"total"`
}

// BudgetPresets are the quick-pick amounts offered by the optimizer.
var BudgetPresets = []int{20, 30, 50, 70, 100}

const maxResults = 5

// Search enumerates every affordable single item and unordered pair of
// distinct items, ranked by item count then by total, both descending,
// and returns at most five. A budget that buys nothing yields an empty
// slice, not an error.
func Search(items []catalog.Item, budget int, exclusions catalog.ExclusionSet) []Combo {
	if budget <= 0 {
		return nil
	}

	affordable := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.Available && item.Price <= budget {
			affordable = append(affordable, item)
		}
	}
	affordable = catalog.FilterByAllergens(affordable, exclusions)

	var combos []Combo
	for i, first := range affordable {
		combos = append(combos, Combo{
			Items: []catalog.Item{first},
			Total: first.Price,
		})

		for _, second := range affordable[i+1:] {
			if first.Price+second.Price <= budget {
				combos = append(combos, Combo{
					Items: []catalog.Item{first, second},
					Total: first.Price + second.Price,
				})
			}
		}
	}

	sort.SliceStable(combos, func(a, b int) bool {
		if len(combos[a].Items) != len(combos[b].Items) {
			return len(combos[a].Items) > len(combos[b].Items)
		}
		return combos[a].Total > combos[b].Total
	})

	if len(combos) > maxResults {
		combos = combos[:maxResults]
	}
	return combos
}
