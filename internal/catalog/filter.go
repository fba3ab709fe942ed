package catalog

// FilterByAllergens returns the items that carry none of the excluded tags.
// An empty exclusion set returns the input slice untouched, order preserved.
func FilterByAllergens(items []Item, exclusions ExclusionSet) []Item {
	if len(exclusions) == 0 {
		return items
	}

	safe := make([]Item, 0, len(items))
	for _, item := range items {
		if !containsAny(item.Allergens, exclusions) {
			safe = append(safe, item)
		}
	}
	return safe
}

func containsAny(tags []Allergen, exclusions ExclusionSet) bool {
	for _, tag := range tags {
		if exclusions[tag] {
			return true
		}
	}
	return false
}
