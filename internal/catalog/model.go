package catalog

// Category is the closed set of menu sections shown on the counter board.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategorySnacks    Category = "snacks"
	CategoryDrinks    Category = "drinks"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryBreakfast,
		CategoryLunch,
		CategorySnacks,
		CategoryDrinks,
	}
}

// ParseCategory maps a query-string value onto the closed enum.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryBreakfast, CategoryLunch, CategorySnacks, CategoryDrinks:
		return Category(s), true
	}
	return "", false
}

// Allergen is the closed set of tags an item can carry and a student can exclude.
type Allergen string

const (
	AllergenPeanuts   Allergen = "peanuts"
	AllergenMilk      Allergen = "milk"
	AllergenGluten    Allergen = "gluten"
	AllergenEggs      Allergen = "eggs"
	AllergenSoy       Allergen = "soy"
	AllergenShellfish Allergen = "shellfish"
	AllergenTreeNuts  Allergen = "tree_nuts"
)

var allergenLabels = map[Allergen]string{
	AllergenPeanuts:   "Peanuts",
	AllergenMilk:      "Milk/Dairy",
	AllergenGluten:    "Gluten",
	AllergenEggs:      "Eggs",
	AllergenSoy:       "Soy",
	AllergenShellfish: "Shellfish",
	AllergenTreeNuts:  "Tree Nuts",
}

// Label returns the display name for the allergy selector.
func (a Allergen) Label() string {
	return allergenLabels[a]
}

// Allergens returns every known allergen in display order.
func Allergens() []Allergen {
	return []Allergen{
		AllergenPeanuts,
		AllergenMilk,
		AllergenGluten,
		AllergenEggs,
		AllergenSoy,
		AllergenShellfish,
		AllergenTreeNuts,
	}
}

// ParseAllergen maps a raw tag onto the closed enum.
func ParseAllergen(s string) (Allergen, bool) {
	_, ok := allergenLabels[Allergen(s)]
	return Allergen(s), ok
}

// Item is one catalog entry. The catalog owns it; the rest of the
// service treats it as read-only.
type Item struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           int        `json:"price"`
	Category        Category   `json:"category"`
	ImageURL        string     `json:"image"`
	Available       bool       `json:"available"`
	PrepTimeMinutes int        `json:"prep_time"`
	Allergens       []Allergen `json:"allergens"`
	Veg             bool       `json:"is_veg"`
}

// ExclusionSet is a student's active allergen restrictions,
// replaced wholesale whenever the allergy settings change.
type ExclusionSet map[Allergen]bool

// NewExclusionSet builds a set from raw tags, dropping unknown ones.
func NewExclusionSet(tags []string) ExclusionSet {
	set := make(ExclusionSet, len(tags))
	for _, tag := range tags {
		if a, ok := ParseAllergen(tag); ok {
			set[a] = true
		}
	}
	return set
}

// Tags returns the set's members in the fixed allergen display order.
func (e ExclusionSet) Tags() []string {
	tags := make([]string, 0, len(e))
	for _, a := range Allergens() {
		if e[a] {
			tags = append(tags, string(a))
		}
	}
	return tags
}
