package prediction

import (
	"math"
	"strings"

	"alcyxob/fitness-planner/internal/domain"
)

const (
	mlPerKg            = 35
	mlPerGlass         = 250
	defaultActivityMl  = 500
	lowEnergyCarbShift = 5
)

var hydrationActivityBonusMl = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        0,
	domain.ActivityLightlyActive:    250,
	domain.ActivityModeratelyActive: 500,
	domain.ActivityVeryActive:       750,
	domain.ActivityExtremelyActive:  1000,
}

// HydrationNeeds is the recommended daily water intake.
type HydrationNeeds struct {
	DailyMl      int      `json:"daily_ml"`
	DailyGlasses int      `json:"daily_glasses"`
	Timing       []string `json:"timing"`
}

// PredictHydrationNeeds is 35 ml per kg of body weight plus an activity bonus.
func PredictHydrationNeeds(weightKg float64, activity domain.ActivityLevel) HydrationNeeds {
	bonus, ok := hydrationActivityBonusMl[activity.Normalize()]
	if !ok {
		bonus = defaultActivityMl
	}
	total := weightKg*mlPerKg + bonus
	glasses := int(math.RoundToEven(total / mlPerGlass))

	return HydrationNeeds{
		DailyMl:      int(math.RoundToEven(total)),
		DailyGlasses: glasses,
		Timing:       hydrationTiming(glasses),
	}
}

func hydrationTiming(glasses int) []string {
	steps := []struct {
		min  int
		text string
	}{
		{1, "Upon waking: 1-2 glasses"},
		{3, "Before lunch: 1 glass"},
		{5, "Afternoon: 1-2 glasses"},
		{7, "With dinner: 1 glass"},
		{8, "Evening: 1 glass"},
	}
	timing := []string{}
	for _, s := range steps {
		if glasses >= s.min {
			timing = append(timing, s.text)
		}
	}
	return timing
}

// MealTiming suggests clock times for the day's meals.
type MealTiming struct {
	Breakfast   string `json:"breakfast"`
	Snack1      string `json:"snack_1,omitempty"`
	Lunch       string `json:"lunch"`
	Snack2      string `json:"snack_2,omitempty"`
	Snack       string `json:"snack,omitempty"`
	Dinner      string `json:"dinner"`
	PostWorkout string `json:"post_workout,omitempty"`
	Note        string `json:"note"`
}

// PredictMealTiming picks a meal schedule for the goal.
func PredictMealTiming(goal domain.HealthGoal) MealTiming {
	switch goal.Normalize() {
	case domain.GoalMuscleGain:
		return MealTiming{
			Breakfast:   "07:00 AM",
			Snack1:      "10:00 AM",
			Lunch:       "12:30 PM",
			Snack2:      "03:30 PM",
			Dinner:      "06:30 PM",
			PostWorkout: "Within 30 min after exercise",
			Note:        "Frequent meals support muscle growth",
		}
	case domain.GoalWeightLoss:
		return MealTiming{
			Breakfast: "08:00 AM",
			Lunch:     "01:00 PM",
			Snack:     "04:00 PM",
			Dinner:    "07:00 PM",
			Note:      "3 meals + 1 snack for satiety",
		}
	default:
		return MealTiming{
			Breakfast: "07:30 AM",
			Lunch:     "12:30 PM",
			Snack:     "03:30 PM",
			Dinner:    "07:00 PM",
			Note:      "Balanced timing for steady energy",
		}
	}
}

// MacroDistribution is a protein/carb/fat split in whole percent.
//
// NOTE: these splits differ from the ones nutrition.Macros sizes plans with.
type MacroDistribution struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

var macroDistributions = map[domain.HealthGoal]MacroDistribution{
	domain.GoalWeightLoss:  {Protein: 35, Carbs: 35, Fats: 30},
	domain.GoalMuscleGain:  {Protein: 30, Carbs: 45, Fats: 25},
	domain.GoalMaintenance: {Protein: 25, Carbs: 45, Fats: 30},
	domain.GoalEndurance:   {Protein: 20, Carbs: 55, Fats: 25},
}

// EnergyLevel as self-reported by the user.
const (
	EnergyNormal = "normal"
	EnergyLow    = "low"
)

// PredictMacroDistribution returns the split for the goal, shifting 5% from
// fats to carbs when energy is low and the goal is not weight loss.
func PredictMacroDistribution(goal domain.HealthGoal, energyLevel string) MacroDistribution {
	goal = goal.Normalize()
	dist, ok := macroDistributions[goal]
	if !ok {
		dist = macroDistributions[domain.GoalMaintenance]
	}
	if strings.EqualFold(energyLevel, EnergyLow) && goal != domain.GoalWeightLoss {
		dist.Carbs += lowEnergyCarbShift
		dist.Fats -= lowEnergyCarbShift
	}
	return dist
}

// MealPreferences are the protein and carb sources the user likely prefers.
type MealPreferences struct {
	PreferredProteins []string `json:"preferred_proteins"`
	PreferredCarbs    []string `json:"preferred_carbs"`
}

// PredictMealPreferences reads the food preference keywords.
func PredictMealPreferences(profile domain.UserProfile) MealPreferences {
	prefs := profile.Preferences()
	text := strings.ToLower(profile.FoodPreferences)

	var out MealPreferences
	switch {
	case strings.Contains(text, "vegetarian"):
		out.PreferredProteins = []string{"tofu", "tempeh", "legumes", "eggs", "greek yogurt"}
	case prefs.Vegan:
		out.PreferredProteins = []string{"tofu", "tempeh", "legumes", "quinoa"}
	case prefs.Vegetarian:
		out.PreferredProteins = []string{"tofu", "tempeh", "legumes", "eggs", "greek yogurt"}
	default:
		out.PreferredProteins = []string{"chicken", "fish", "turkey", "eggs", "beef"}
	}

	if prefs.LowCarb {
		out.PreferredCarbs = []string{"cauliflower", "zucchini", "spinach"}
	} else {
		out.PreferredCarbs = []string{"brown rice", "sweet potato", "oats", "quinoa"}
	}
	return out
}
