// Package planner builds daily meal and exercise plans. Two plan sources
// share the PlanSource contract: the algorithmic composer in this file and
// the generative source backed by a text model.
package planner

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"alcyxob/fitness-planner/internal/domain"
)

// PlanSource turns a profile and its daily targets into a day plan.
type PlanSource interface {
	GeneratePlan(ctx context.Context, profile domain.UserProfile, dailyCalories int, macros domain.MacroTarget) (*domain.DailyPlan, error)
}

// RandFactory yields a fresh random source for a single plan call.
type RandFactory func() Rand

// SeededRandFactory returns a factory whose sources all start from seed, so
// every call makes the same choices. A zero seed means seed from the clock.
func SeededRandFactory(seed int64) RandFactory {
	if seed == 0 {
		return func() Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }
	}
	return func() Rand { return rand.New(rand.NewSource(seed)) }
}

// SlotShares is the whole-percent share of calories and of every macro
// each slot receives.
var SlotShares = map[domain.MealSlot]int{
	domain.SlotBreakfast: 25,
	domain.SlotLunch:     35,
	domain.SlotDinner:    30,
	domain.SlotSnacks:    10,
}

// AlgorithmicPlanner composes plans from the static food table.
type AlgorithmicPlanner struct {
	composer *MealComposer
	catalog  *Catalog
	newRand  RandFactory
}

// NewAlgorithmicPlanner builds a planner over catalog. A nil factory seeds
// each call from the clock.
func NewAlgorithmicPlanner(catalog *Catalog, newRand RandFactory) *AlgorithmicPlanner {
	if newRand == nil {
		newRand = SeededRandFactory(0)
	}
	return &AlgorithmicPlanner{
		composer: NewMealComposer(catalog),
		catalog:  catalog,
		newRand:  newRand,
	}
}

// SlotTargets splits the daily targets across the four slots.
func SlotTargets(dailyCalories int, macros domain.MacroTarget) map[domain.MealSlot]MealRequest {
	out := make(map[domain.MealSlot]MealRequest, len(domain.MealSlots))
	for _, slot := range domain.MealSlots {
		pct := SlotShares[slot]
		out[slot] = MealRequest{
			Slot:     slot,
			Calories: dailyCalories * pct / 100,
			Macros: domain.MacroTarget{
				ProteinG: macros.ProteinG * pct / 100,
				CarbG:    macros.CarbG * pct / 100,
				FatG:     macros.FatG * pct / 100,
			},
		}
	}
	return out
}

// GeneratePlan composes one meal per slot, picks the exercise routine for the
// goal and derives the grocery list.
func (p *AlgorithmicPlanner) GeneratePlan(ctx context.Context, profile domain.UserProfile, dailyCalories int, macros domain.MacroTarget) (*domain.DailyPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := p.newRand()
	vegetarian := profile.Preferences().Vegetarian
	excluded := p.catalog.Exclusions(profile.Allergies)
	targets := SlotTargets(dailyCalories, macros)

	plan := &domain.DailyPlan{Source: domain.SourceAlgorithmic}
	for _, slot := range domain.MealSlots {
		req := targets[slot]
		req.Vegetarian = vegetarian
		req.Excluded = excluded

		meal, err := p.composer.Compose(req, rng)
		if err != nil {
			return nil, fmt.Errorf("composing %s: %w", slot, err)
		}
		plan.Meals = append(plan.Meals, meal)
		plan.MealPlan.Set(slot, meal.Description)
	}

	plan.Exercises = SelectExercises(profile.HealthGoal)
	plan.GroceryList = GroceryList(plan.Meals)
	return plan, nil
}

// GroceryList is the sorted, de-duplicated set of food names across meals.
func GroceryList(meals []domain.Meal) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range meals {
		for _, it := range m.Items {
			if _, ok := seen[it.Name]; ok {
				continue
			}
			seen[it.Name] = struct{}{}
			out = append(out, it.Name)
		}
	}
	sort.Strings(out)
	return out
}
