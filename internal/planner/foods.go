package planner

import (
	"sort"
	"strings"

	"alcyxob/fitness-planner/internal/domain"
)

// Catalog is an immutable view over the food table. Filtering always returns
// fresh slices so concurrent plan calls never observe each other's exclusions.
type Catalog struct {
	items map[string]domain.FoodItem
}

// NewCatalog indexes the given foods by ID.
func NewCatalog(foods []domain.FoodItem) *Catalog {
	items := make(map[string]domain.FoodItem, len(foods))
	for _, f := range foods {
		items[f.ID] = f
	}
	return &Catalog{items: items}
}

// DefaultCatalog is the built-in nutrient table.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultFoods)
}

// Get looks a food up by ID.
func (c *Catalog) Get(id string) (domain.FoodItem, bool) {
	f, ok := c.items[id]
	return f, ok
}

// ByCategory returns the foods of one category sorted by ID, minus the
// excluded IDs.
func (c *Catalog) ByCategory(category domain.FoodCategory, excluded ExclusionSet) []domain.FoodItem {
	var out []domain.FoodItem
	for _, f := range c.items {
		if f.Category == category && !excluded.Has(f.ID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pick resolves a shortlist of IDs against the catalog, keeping list order
// and dropping unknown, excluded and (if asked) non-vegetarian entries.
func (c *Catalog) Pick(ids []string, vegetarian bool, excluded ExclusionSet) []domain.FoodItem {
	out := make([]domain.FoodItem, 0, len(ids))
	for _, id := range ids {
		f, ok := c.items[id]
		if !ok || excluded.Has(id) {
			continue
		}
		if vegetarian && !f.Vegetarian {
			continue
		}
		out = append(out, f)
	}
	return out
}

// ExclusionSet holds food IDs removed for a single plan call.
type ExclusionSet map[string]struct{}

// Has reports whether id is excluded. A nil set excludes nothing.
func (s ExclusionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// nutAllergyKeywords trigger the nut exclusion when found in any allergy token.
var nutAllergyKeywords = []string{"nut", "almond", "peanut"}

// Exclusions derives the per-call exclusion set from the profile's allergy
// tokens. Every food tagged with a matched allergen is excluded.
func (c *Catalog) Exclusions(allergies []string) ExclusionSet {
	set := ExclusionSet{}
	if !hasNutAllergy(allergies) {
		return set
	}
	for id, f := range c.items {
		if f.HasAllergen(domain.AllergenNuts) {
			set[id] = struct{}{}
		}
	}
	return set
}

func hasNutAllergy(allergies []string) bool {
	for _, token := range allergies {
		token = strings.ToLower(token)
		for _, kw := range nutAllergyKeywords {
			if strings.Contains(token, kw) {
				return true
			}
		}
	}
	return false
}

func food(id string, category domain.FoodCategory, kcal, protein, carb, fat float64, name string, vegetarian bool, allergens ...string) domain.FoodItem {
	return domain.FoodItem{
		ID:              id,
		Category:        category,
		CaloriesPer100g: kcal,
		ProteinPer100g:  protein,
		CarbPer100g:     carb,
		FatPer100g:      fat,
		Name:            name,
		Vegetarian:      vegetarian,
		Allergens:       allergens,
	}
}

// Per 100 g. Only the listed proteins are vegetarian-safe; every carb,
// vegetable and fat is plant based.
var defaultFoods = []domain.FoodItem{
	// --- Proteins ---
	food("chicken_breast", domain.CategoryProtein, 165, 31, 0, 3.6, "Chicken Breast", false),
	food("eggs", domain.CategoryProtein, 155, 13, 1.1, 11, "Eggs", true),
	food("greek_yogurt", domain.CategoryProtein, 97, 10, 3.6, 5, "Greek Yogurt", true),
	food("salmon", domain.CategoryProtein, 208, 20, 0, 13, "Salmon", false),
	food("tuna", domain.CategoryProtein, 130, 28, 0, 1, "Tuna", false),
	food("turkey", domain.CategoryProtein, 135, 30, 0, 1, "Turkey", false),
	food("tofu", domain.CategoryProtein, 76, 8, 1.9, 4.8, "Tofu", true),
	food("lentils", domain.CategoryProtein, 116, 9, 20, 0.4, "Lentils", true),
	food("chickpeas", domain.CategoryProtein, 164, 8.9, 27, 2.6, "Chickpeas", true),
	food("cottage_cheese", domain.CategoryProtein, 98, 11, 3.4, 4.3, "Cottage Cheese", true),
	food("tempeh", domain.CategoryProtein, 193, 19, 9, 11, "Tempeh", true),
	food("protein_powder", domain.CategoryProtein, 120, 24, 3, 1.5, "Protein Powder", true),

	// --- Carbs ---
	food("oatmeal", domain.CategoryCarb, 389, 17, 66, 7, "Oatmeal", true),
	food("brown_rice", domain.CategoryCarb, 111, 2.6, 23, 0.9, "Brown Rice", true),
	food("quinoa", domain.CategoryCarb, 120, 4.4, 21, 1.9, "Quinoa", true),
	food("sweet_potato", domain.CategoryCarb, 86, 1.6, 20, 0.1, "Sweet Potato", true),
	food("whole_wheat_bread", domain.CategoryCarb, 247, 13, 41, 3.4, "Whole Wheat Bread", true),
	food("pasta", domain.CategoryCarb, 131, 5, 25, 1.1, "Whole Wheat Pasta", true),
	food("banana", domain.CategoryCarb, 89, 1.1, 23, 0.3, "Banana", true),
	food("apple", domain.CategoryCarb, 52, 0.3, 14, 0.2, "Apple", true),
	food("berries", domain.CategoryCarb, 57, 0.7, 14, 0.3, "Mixed Berries", true),

	// --- Vegetables ---
	food("broccoli", domain.CategoryVegetable, 34, 2.8, 7, 0.4, "Broccoli", true),
	food("spinach", domain.CategoryVegetable, 23, 2.9, 3.6, 0.4, "Spinach", true),
	food("mixed_vegetables", domain.CategoryVegetable, 65, 2.6, 13, 0.4, "Mixed Vegetables", true),
	food("tomatoes", domain.CategoryVegetable, 18, 0.9, 3.9, 0.2, "Tomatoes", true),
	food("cucumber", domain.CategoryVegetable, 15, 0.7, 3.6, 0.1, "Cucumber", true),
	food("bell_peppers", domain.CategoryVegetable, 31, 1, 6, 0.3, "Bell Peppers", true),
	food("cauliflower", domain.CategoryVegetable, 25, 1.9, 5, 0.3, "Cauliflower", true),
	food("salad_greens", domain.CategoryVegetable, 15, 1.4, 2.9, 0.2, "Salad Greens", true),

	// --- Fats ---
	food("avocado", domain.CategoryFat, 160, 2, 9, 15, "Avocado", true),
	food("almonds", domain.CategoryFat, 579, 21, 22, 50, "Almonds", true, domain.AllergenNuts),
	food("olive_oil", domain.CategoryFat, 884, 0, 0, 100, "Olive Oil", true),
	food("peanut_butter", domain.CategoryFat, 588, 25, 20, 50, "Peanut Butter", true, domain.AllergenNuts),
	food("walnuts", domain.CategoryFat, 654, 15, 14, 65, "Walnuts", true, domain.AllergenNuts),
	food("chia_seeds", domain.CategoryFat, 486, 17, 42, 31, "Chia Seeds", true),
}
