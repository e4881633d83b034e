package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"alcyxob/fitness-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

const validPlanJSON = `{
  "meal_plan": {
    "breakfast": "Oats with berries (450 kcal)",
    "lunch": "Chicken and rice (700 kcal)",
    "dinner": "Salmon with greens (600 kcal)",
    "snacks": "Greek yogurt (200 kcal)"
  },
  "exercises": ["Squats: 3x10", "Push-ups: 3x12"],
  "grocery_list": ["Oats", "Berries", "Chicken", "Rice"]
}`

func TestGenerativePlannerParsesFencedJSON(t *testing.T) {
	gen := &fakeGenerator{text: "Here is your plan:\n```json\n" + validPlanJSON + "\n```"}
	profile := testProfile()
	profile.Allergies = []string{"shellfish"}

	plan, err := NewGenerativePlanner(gen).GeneratePlan(context.Background(), profile, 2000, domain.MacroTarget{ProteinG: 150, CarbG: 225, FatG: 55})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceGenerative, plan.Source)
	assert.Equal(t, "Chicken and rice (700 kcal)", plan.MealPlan.Lunch)
	assert.Equal(t, []string{"Squats: 3x10", "Push-ups: 3x12"}, plan.Exercises)
	assert.Len(t, plan.GroceryList, 4)

	assert.Contains(t, gen.prompt, "- Daily Calories: 2000 kcal")
	assert.Contains(t, gen.prompt, "- Protein: 150g")
	assert.Contains(t, gen.prompt, "- Allergies: shellfish")
	assert.Contains(t, gen.prompt, "- Health Goal: muscle_gain")
}

func TestGenerativePlannerFallsBackWhenUnavailable(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("%w: status 429", ErrGeneratorUnavailable)}
	profile := testProfile()

	plan, err := NewGenerativePlanner(gen).GeneratePlan(context.Background(), profile, 3000, domain.MacroTarget{})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceFallback, plan.Source)
	assert.Equal(t,
		"4 whole eggs scrambled with avocado and whole wheat toast OR Protein oatmeal with nuts and banana (750 kcal)",
		plan.MealPlan.Breakfast)
	assert.Equal(t, "Protein shake, cottage cheese with fruit, handful of almonds (450 kcal)", plan.MealPlan.Snacks)
	assert.Equal(t, "Eggs (2 dozen)", plan.GroceryList[0])
}

func TestGenerativePlannerFallsBackOnQuotaMessage(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("Resource has been exhausted (e.g. check quota)")}
	profile := testProfile()
	profile.HealthGoal = domain.GoalWeightLoss
	profile.FoodPreferences = "vegetarian"

	plan, err := NewGenerativePlanner(gen).GeneratePlan(context.Background(), profile, 2000, domain.MacroTarget{})
	require.NoError(t, err)

	assert.Equal(t, "Oatmeal with chia seeds and berries (500 kcal)", plan.MealPlan.Breakfast)
	assert.Equal(t, "Tofu stir-fry with mixed vegetables and brown rice (600 kcal)", plan.MealPlan.Dinner)
	assert.Equal(t, "Chia seeds", plan.GroceryList[0])
}

func TestGenerativePlannerFallsBackOnBadOutput(t *testing.T) {
	tests := map[string]string{
		"not json":        "I cannot help with that.",
		"broken json":     `{"meal_plan": {"breakfast": "x"`,
		"missing slot":    `{"meal_plan": {"breakfast": "a", "lunch": "b", "dinner": "c"}, "exercises": ["x"], "grocery_list": ["y"]}`,
		"no exercises":    `{"meal_plan": {"breakfast": "a", "lunch": "b", "dinner": "c", "snacks": "d"}, "exercises": [], "grocery_list": ["y"]}`,
		"empty groceries": `{"meal_plan": {"breakfast": "a", "lunch": "b", "dinner": "c", "snacks": "d"}, "exercises": ["x"]}`,
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			profile := testProfile()
			profile.HealthGoal = domain.GoalEndurance

			plan, err := NewGenerativePlanner(&fakeGenerator{text: text}).GeneratePlan(context.Background(), profile, 2000, domain.MacroTarget{})
			require.NoError(t, err)
			assert.Equal(t, domain.SourceFallback, plan.Source)
			assert.True(t, plan.MealPlan.Complete())
			assert.NotEmpty(t, plan.Exercises)
			assert.NotEmpty(t, plan.GroceryList)
		})
	}
}

func TestGenerativePlannerUnknownGoalGetsGenericPlan(t *testing.T) {
	gen := &fakeGenerator{err: ErrGeneratorUnavailable}
	profile := testProfile()
	profile.HealthGoal = "become_an_astronaut"

	plan, err := NewGenerativePlanner(gen).GeneratePlan(context.Background(), profile, 2000, domain.MacroTarget{})
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal with fruits and nuts (400 kcal)", plan.MealPlan.Breakfast)
	assert.Len(t, plan.GroceryList, 10)
}

func TestGenerativePlannerPropagatesUnexpectedErrors(t *testing.T) {
	boom := errors.New("connection reset by peer")
	_, err := NewGenerativePlanner(&fakeGenerator{err: boom}).GeneratePlan(context.Background(), testProfile(), 2000, domain.MacroTarget{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestGenerativePlannerDoesNotTreatPortNumbersAsRateLimits(t *testing.T) {
	dial := errors.New("dial tcp 10.0.0.1:4290: connect: connection refused")
	plan, err := NewGenerativePlanner(&fakeGenerator{err: dial}).GeneratePlan(context.Background(), testProfile(), 2000, domain.MacroTarget{})
	require.Error(t, err)
	assert.ErrorIs(t, err, dial)
	assert.Nil(t, plan)
}

func TestFallbackPlanPlantBasedGetsVegetarianMeals(t *testing.T) {
	profile := domain.UserProfile{HealthGoal: domain.GoalWeightLoss, FoodPreferences: "Plant-based, no dairy"}
	plan := FallbackPlan(profile, 2000)

	assert.Equal(t, "Oatmeal with chia seeds and berries (500 kcal)", plan.MealPlan.Breakfast)
	assert.Equal(t, "Tofu stir-fry with mixed vegetables and brown rice (600 kcal)", plan.MealPlan.Dinner)
	assert.Equal(t, "Chia seeds", plan.GroceryList[0])
}

func TestGenericPlanReturnsCopies(t *testing.T) {
	first := GenericPlan()
	first.GroceryList[0] = "Changed"
	first.Exercises = nil

	second := GenericPlan()
	assert.Equal(t, "Oats", second.GroceryList[0])
	assert.Len(t, second.Exercises, 5)
}

func TestFallbackPlanCoversEveryGoal(t *testing.T) {
	for _, goal := range []domain.HealthGoal{domain.GoalWeightLoss, domain.GoalMuscleGain, domain.GoalMaintenance, domain.GoalEndurance} {
		for _, prefs := range []string{"", "vegetarian"} {
			profile := domain.UserProfile{HealthGoal: goal, FoodPreferences: prefs}
			plan := FallbackPlan(profile, 1800)
			assert.True(t, plan.MealPlan.Complete(), "%s %q", goal, prefs)
			assert.NotEmpty(t, plan.Exercises)
			assert.NotEmpty(t, plan.GroceryList)
		}
	}
}

func TestCleanLLMResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanLLMResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, cleanLLMResponse(`Sure! {"a":{"b":2}} Enjoy.`))
	assert.Equal(t, "", cleanLLMResponse("no braces here"))
	assert.Equal(t, "", cleanLLMResponse("} backwards {"))
}
