package catalog

// SeedItems is the canteen's launch menu. The in-memory repository serves
// it directly and the Postgres repository inserts it on first boot.
func SeedItems() []Item {
	return []Item{
		// Breakfast
		{
			ID:              "b1",
			Name:            "Masala Dosa",
			Description:     "Crispy rice crepe with spiced potato filling, served with sambar and chutney",
			Price:           35,
			Category:        CategoryBreakfast,
			ImageURL:        "https://images.unsplash.com/photo-1668236543090-82eba5ee5976?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 8,
			Allergens:       []Allergen{},
			Veg:             true,
		},
		{
			ID:              "b2",
			Name:            "Idli Sambar",
			Description:     "Soft steamed rice cakes with lentil stew and coconut chutney",
			Price:           25,
			Category:        CategoryBreakfast,
			ImageURL:        "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 5,
			Allergens:       []Allergen{},
			Veg:             true,
		},
		{
			ID:              "b3",
			Name:            "Poori Bhaji",
			Description:     "Fluffy fried bread with spiced potato curry",
			Price:           30,
			Category:        CategoryBreakfast,
			ImageURL:        "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 10,
			Allergens:       []Allergen{AllergenGluten},
			Veg:             true,
		},
		{
			ID:              "b4",
			Name:            "Upma",
			Description:     "Savory semolina porridge with vegetables and cashews",
			Price:           20,
			Category:        CategoryBreakfast,
			ImageURL:        "https://images.unsplash.com/photo-1567337710282-00832b415979?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 6,
			Allergens:       []Allergen{AllergenGluten, AllergenTreeNuts},
			Veg:             true,
		},
		{
			ID:              "b5",
			Name:            "Pongal",
			Description:     "Creamy rice and lentil porridge with ghee and pepper",
			Price:           28,
			Category:        CategoryBreakfast,
			ImageURL:        "https://images.unsplash.com/photo-1630383249896-424e482df921?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 7,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
		{
			ID:              "b6",
			Name:            "Bread Omelette",
			Description:     "Fluffy egg omelette with toast and butter",
			Price:           35,
			Category:        CategoryBreakfast,
			ImageURL:        "https://images.unsplash.com/photo-1525351484163-7529414344d8?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 8,
			Allergens:       []Allergen{AllergenEggs, AllergenGluten, AllergenMilk},
			Veg:             false,
		},

		// Lunch
		{
			ID:              "l1",
			Name:            "Veg Meals",
			Description:     "Rice, sambar, rasam, 2 vegetables, curd, papad, and pickle",
			Price:           60,
			Category:        CategoryLunch,
			ImageURL:        "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 5,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
		{
			ID:              "l2",
			Name:            "Chicken Biryani",
			Description:     "Aromatic basmati rice with tender chicken pieces and raita",
			Price:           80,
			Category:        CategoryLunch,
			ImageURL:        "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 15,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             false,
		},
		{
			ID:              "l3",
			Name:            "Veg Biryani",
			Description:     "Fragrant rice with mixed vegetables and aromatic spices",
			Price:           55,
			Category:        CategoryLunch,
			ImageURL:        "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 12,
			Allergens:       []Allergen{},
			Veg:             true,
		},
		{
			ID:              "l4",
			Name:            "Curd Rice",
			Description:     "Cooling yogurt rice with tempering and pomegranate",
			Price:           35,
			Category:        CategoryLunch,
			ImageURL:        "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 3,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
		{
			ID:              "l5",
			Name:            "Chapati Curry",
			Description:     "3 soft chapatis with dal and vegetable curry",
			Price:           45,
			Category:        CategoryLunch,
			ImageURL:        "https://images.unsplash.com/photo-1505253758473-96b7015fcd40?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 10,
			Allergens:       []Allergen{AllergenGluten},
			Veg:             true,
		},

		// Snacks
		{
			ID:              "s1",
			Name:            "Samosa",
			Description:     "Crispy pastry filled with spiced potatoes and peas",
			Price:           15,
			Category:        CategorySnacks,
			ImageURL:        "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 3,
			Allergens:       []Allergen{AllergenGluten},
			Veg:             true,
		},
		{
			ID:              "s2",
			Name:            "Vada Pav",
			Description:     "Spiced potato fritter in a soft bun with chutneys",
			Price:           20,
			Category:        CategorySnacks,
			ImageURL:        "https://images.unsplash.com/photo-1606755456206-b25206cde27e?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 5,
			Allergens:       []Allergen{AllergenGluten},
			Veg:             true,
		},
		{
			ID:              "s3",
			Name:            "Pani Puri",
			Description:     "6 crispy puris with spiced water and sweet chutney",
			Price:           25,
			Category:        CategorySnacks,
			ImageURL:        "https://images.unsplash.com/photo-1625398407796-82650a8c135f?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 4,
			Allergens:       []Allergen{AllergenGluten},
			Veg:             true,
		},
		{
			ID:              "s4",
			Name:            "Bhel Puri",
			Description:     "Puffed rice with vegetables and tangy chutneys",
			Price:           20,
			Category:        CategorySnacks,
			ImageURL:        "https://images.unsplash.com/photo-1626132647523-66f5bf380027?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 3,
			Allergens:       []Allergen{AllergenPeanuts, AllergenGluten},
			Veg:             true,
		},
		{
			ID:              "s5",
			Name:            "Bread Pakora",
			Description:     "Crispy gram flour coated bread with potato filling",
			Price:           18,
			Category:        CategorySnacks,
			ImageURL:        "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 5,
			Allergens:       []Allergen{AllergenGluten},
			Veg:             true,
		},

		// Drinks
		{
			ID:              "d1",
			Name:            "Masala Chai",
			Description:     "Hot spiced Indian tea with milk",
			Price:           10,
			Category:        CategoryDrinks,
			ImageURL:        "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 3,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
		{
			ID:              "d2",
			Name:            "Filter Coffee",
			Description:     "Traditional South Indian filter coffee",
			Price:           15,
			Category:        CategoryDrinks,
			ImageURL:        "https://images.unsplash.com/photo-1610889556528-9a770e32642f?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 3,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
		{
			ID:              "d3",
			Name:            "Lassi",
			Description:     "Sweet or salted yogurt drink",
			Price:           25,
			Category:        CategoryDrinks,
			ImageURL:        "https://images.unsplash.com/photo-1626200419199-391ae4be7a41?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 2,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
		{
			ID:              "d4",
			Name:            "Fresh Lime Soda",
			Description:     "Refreshing lime juice with soda water",
			Price:           20,
			Category:        CategoryDrinks,
			ImageURL:        "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 2,
			Allergens:       []Allergen{},
			Veg:             true,
		},
		{
			ID:              "d5",
			Name:            "Buttermilk",
			Description:     "Spiced churned yogurt drink",
			Price:           12,
			Category:        CategoryDrinks,
			ImageURL:        "https://images.unsplash.com/photo-1587657565520-6c3c7c3b3c25?w=400&h=300&fit=crop",
			Available:       true,
			PrepTimeMinutes: 2,
			Allergens:       []Allergen{AllergenMilk},
			Veg:             true,
		},
	}
}
