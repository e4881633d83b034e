package planner

import (
	"errors"
	"fmt"

	"alcyxob/fitness-planner/internal/domain"
)

// Rand is the randomness the composer needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// VegetablePortionG is the fixed vegetable portion of every meal.
const VegetablePortionG = 150

// ErrNoCandidates is returned when filtering leaves nothing to choose from.
var ErrNoCandidates = errors.New("no food candidates left after filtering")

type portionBand struct {
	fallback int // used when the food has none of the macro
	min, max int
}

var portionBands = map[domain.FoodCategory]portionBand{
	domain.CategoryProtein: {fallback: 100, min: 50, max: 300},
	domain.CategoryCarb:    {fallback: 100, min: 30, max: 200},
	domain.CategoryFat:     {fallback: 15, min: 10, max: 50},
}

type slotShortlist struct {
	proteins []string
	carbs    []string
}

var slotShortlists = map[domain.MealSlot]slotShortlist{
	domain.SlotBreakfast: {
		proteins: []string{"eggs", "greek_yogurt", "protein_powder", "cottage_cheese"},
		carbs:    []string{"oatmeal", "whole_wheat_bread", "banana", "berries"},
	},
	domain.SlotLunch: {
		proteins: []string{"chicken_breast", "tuna", "turkey", "tofu", "chickpeas"},
		carbs:    []string{"brown_rice", "quinoa", "sweet_potato", "whole_wheat_bread"},
	},
	domain.SlotDinner: {
		proteins: []string{"salmon", "chicken_breast", "turkey", "tempeh", "lentils"},
		carbs:    []string{"brown_rice", "quinoa", "sweet_potato", "pasta"},
	},
	domain.SlotSnacks: {
		proteins: []string{"greek_yogurt", "cottage_cheese", "protein_powder"},
		carbs:    []string{"apple", "banana", "berries"},
	},
}

// MealRequest carries the per-slot targets and the call's dietary filters.
type MealRequest struct {
	Slot       domain.MealSlot
	Calories   int
	Macros     domain.MacroTarget
	Vegetarian bool
	Excluded   ExclusionSet
}

// MealComposer picks one protein, carb, vegetable and fat for a meal and
// sizes the portions to the slot's macro targets.
type MealComposer struct {
	catalog *Catalog
}

// NewMealComposer returns a composer over the given catalog.
func NewMealComposer(catalog *Catalog) *MealComposer {
	return &MealComposer{catalog: catalog}
}

// Compose builds a meal. Calories are recomputed from the chosen portions
// and may differ from the target.
func (mc *MealComposer) Compose(req MealRequest, rng Rand) (domain.Meal, error) {
	shortlist, ok := slotShortlists[req.Slot]
	if !ok {
		// Anything that is not a main meal is treated as a snack.
		shortlist = slotShortlists[domain.SlotSnacks]
	}

	protein, err := choose(rng, mc.catalog.Pick(shortlist.proteins, req.Vegetarian, req.Excluded))
	if err != nil {
		return domain.Meal{}, fmt.Errorf("%s protein: %w", req.Slot, err)
	}
	carb, err := choose(rng, mc.catalog.Pick(shortlist.carbs, false, req.Excluded))
	if err != nil {
		return domain.Meal{}, fmt.Errorf("%s carb: %w", req.Slot, err)
	}
	veg, err := choose(rng, mc.catalog.ByCategory(domain.CategoryVegetable, req.Excluded))
	if err != nil {
		return domain.Meal{}, fmt.Errorf("%s vegetable: %w", req.Slot, err)
	}
	fat, err := choose(rng, mc.catalog.ByCategory(domain.CategoryFat, req.Excluded))
	if err != nil {
		return domain.Meal{}, fmt.Errorf("%s fat: %w", req.Slot, err)
	}

	items := []domain.MealItem{
		item(protein, Portion(protein, req.Macros.ProteinG)),
		item(carb, Portion(carb, req.Macros.CarbG)),
		item(veg, VegetablePortionG),
		item(fat, Portion(fat, req.Macros.FatG)),
	}

	foods := []domain.FoodItem{protein, carb, veg, fat}
	var kcal float64
	for i, it := range items {
		kcal += float64(it.PortionG) * foods[i].CaloriesPer100g / 100
	}
	calories := int(kcal)

	return domain.Meal{
		Slot:     req.Slot,
		Items:    items,
		Calories: calories,
		Description: fmt.Sprintf("%dg %s, %dg %s, %dg %s, %dg %s (~%d kcal)",
			items[0].PortionG, items[0].Name,
			items[1].PortionG, items[1].Name,
			items[2].PortionG, items[2].Name,
			items[3].PortionG, items[3].Name,
			calories),
	}, nil
}

// Portion sizes a food so it delivers targetG grams of the macro its
// category is chosen for, clamped to the category band.
func Portion(f domain.FoodItem, targetG int) int {
	band, ok := portionBands[f.Category]
	if !ok {
		return VegetablePortionG
	}
	per100g := f.MacroPer100g()
	grams := band.fallback
	if per100g > 0 {
		grams = int(float64(targetG) * 100 / per100g)
	}
	return clampInt(grams, band.min, band.max)
}

func item(f domain.FoodItem, portion int) domain.MealItem {
	return domain.MealItem{Category: f.Category, FoodID: f.ID, Name: f.Name, PortionG: portion}
}

func choose(rng Rand, candidates []domain.FoodItem) (domain.FoodItem, error) {
	if len(candidates) == 0 {
		return domain.FoodItem{}, ErrNoCandidates
	}
	return candidates[rng.Intn(len(candidates))], nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
