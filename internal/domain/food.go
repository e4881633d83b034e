package domain

// FoodCategory groups foods by the macro they are picked for.
type FoodCategory string

const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarb      FoodCategory = "carb"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFat       FoodCategory = "fat"
)

// Allergen tags carried by FoodItem.Allergens.
const (
	AllergenNuts = "nuts"
)

// FoodItem is one row of the static nutrient table. Values are per 100 g.
type FoodItem struct {
	ID              string       `json:"id"`
	Category        FoodCategory `json:"category"`
	CaloriesPer100g float64      `json:"calories_per_100g"`
	ProteinPer100g  float64      `json:"protein_g_per_100g"`
	CarbPer100g     float64      `json:"carb_g_per_100g"`
	FatPer100g      float64      `json:"fat_g_per_100g"`
	Name            string       `json:"display_name"`
	Vegetarian      bool         `json:"vegetarian"`
	Allergens       []string     `json:"allergens,omitempty"`
}

// MacroPer100g returns the per-100g amount of the macro the category is
// sized by. Vegetables are portioned by a fixed weight and return 0.
func (f FoodItem) MacroPer100g() float64 {
	switch f.Category {
	case CategoryProtein:
		return f.ProteinPer100g
	case CategoryCarb:
		return f.CarbPer100g
	case CategoryFat:
		return f.FatPer100g
	default:
		return 0
	}
}

// HasAllergen reports whether the food carries the given allergen tag.
func (f FoodItem) HasAllergen(tag string) bool {
	for _, a := range f.Allergens {
		if a == tag {
			return true
		}
	}
	return false
}
