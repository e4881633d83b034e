package planner

import (
	"fmt"

	"alcyxob/fitness-planner/internal/domain"
)

// cannedOption is one canned text with its vegetarian alternative. An empty
// veg text means the option is shared.
type cannedOption struct {
	text, veg string
}

func (o cannedOption) pick(veg bool) string {
	if veg && o.veg != "" {
		return o.veg
	}
	return o.text
}

type cannedMeal struct {
	cannedOption
	sharePct int
}

type cannedPlan struct {
	meals     map[domain.MealSlot]cannedMeal
	exercises []string
	groceries []cannedOption
}

var cannedPlans = map[domain.HealthGoal]cannedPlan{
	domain.GoalWeightLoss: {
		meals: map[domain.MealSlot]cannedMeal{
			domain.SlotBreakfast: {cannedOption{"Egg white omelet with spinach and tomatoes OR Oatmeal with berries", "Oatmeal with chia seeds and berries"}, 25},
			domain.SlotLunch:     {cannedOption{"Grilled chicken salad with mixed greens and olive oil OR Lentil soup with vegetables", "Quinoa bowl with chickpeas and roasted vegetables"}, 35},
			domain.SlotDinner:    {cannedOption{"Baked salmon with steamed broccoli and cauliflower", "Tofu stir-fry with mixed vegetables and brown rice"}, 30},
			domain.SlotSnacks:    {cannedOption{"Greek yogurt OR apple with almond butter", ""}, 10},
		},
		exercises: []string{
			"Warm-up: 5-10 minutes brisk walking",
			"Cardio: 30 minutes jogging or cycling (moderate intensity)",
			"Bodyweight squats: 3 sets of 15 reps",
			"Push-ups (modified if needed): 3 sets of 10 reps",
			"Plank: 3 sets of 30-45 seconds",
			"Cool-down: 5 minutes stretching",
		},
		groceries: []cannedOption{
			{"Eggs", "Chia seeds"}, {"Spinach", ""}, {"Tomatoes", ""}, {"Mixed greens", ""}, {"Olive oil", ""},
			{"Chicken breast", "Tofu"}, {"Quinoa", ""}, {"Lentils", ""}, {"Chickpeas", ""},
			{"Broccoli", ""}, {"Cauliflower", ""}, {"Mixed vegetables", ""}, {"Salmon", "Extra tofu"},
			{"Greek yogurt", ""}, {"Berries", ""}, {"Apples", ""}, {"Almond butter", ""},
		},
	},
	domain.GoalMuscleGain: {
		meals: map[domain.MealSlot]cannedMeal{
			domain.SlotBreakfast: {cannedOption{"4 whole eggs scrambled with avocado and whole wheat toast OR Protein oatmeal with nuts and banana", "Protein-rich smoothie with banana, oats, peanut butter, and plant protein"}, 25},
			domain.SlotLunch:     {cannedOption{"Grilled chicken breast with brown rice and mixed vegetables", "Large tempeh bowl with quinoa, sweet potato, and avocado"}, 30},
			domain.SlotDinner:    {cannedOption{"Lean beef or turkey with pasta and marinara sauce", "Lentil and bean curry with brown rice"}, 30},
			domain.SlotSnacks:    {cannedOption{"Protein shake, cottage cheese with fruit, handful of almonds", ""}, 15},
		},
		exercises: []string{
			"Warm-up: 5-10 minutes light cardio and dynamic stretching",
			"Barbell squats: 4 sets of 8-10 reps (or bodyweight if at home)",
			"Bench press or push-ups: 4 sets of 8-10 reps",
			"Deadlifts or Romanian deadlifts: 3 sets of 8 reps",
			"Pull-ups or rows: 3 sets of 8-10 reps",
			"Bicep curls: 3 sets of 12 reps",
			"Tricep dips: 3 sets of 12 reps",
			"Cool-down: 5-10 minutes stretching",
		},
		groceries: []cannedOption{
			{"Eggs (2 dozen)", "Plant-based protein powder"}, {"Chicken breast", "Tempeh"},
			{"Lean beef or turkey", "Lentils and beans"}, {"Brown rice", ""}, {"Quinoa", ""},
			{"Whole wheat bread", ""}, {"Pasta", ""}, {"Sweet potato", ""}, {"Avocados", ""},
			{"Mixed vegetables", ""}, {"Bananas", ""}, {"Mixed nuts", ""}, {"Almond butter", ""},
			{"Cottage cheese", "Nutritional yeast"}, {"Protein powder", ""}, {"Olive oil", ""},
		},
	},
	domain.GoalMaintenance: {
		meals: map[domain.MealSlot]cannedMeal{
			domain.SlotBreakfast: {cannedOption{"Whole grain toast with avocado and eggs OR Greek yogurt parfait with granola", "Smoothie bowl with fruits, granola, and nut butter"}, 25},
			domain.SlotLunch:     {cannedOption{"Turkey and hummus wrap with vegetables OR Chicken Caesar salad", "Buddha bowl with quinoa, roasted chickpeas, and tahini dressing"}, 35},
			domain.SlotDinner:    {cannedOption{"Grilled fish with roasted vegetables and wild rice", "Vegetable stir-fry with tofu and noodles"}, 30},
			domain.SlotSnacks:    {cannedOption{"Fresh fruit, nuts, or protein bar", ""}, 10},
		},
		exercises: []string{
			"Warm-up: 5 minutes light cardio",
			"Moderate cardio: 20-25 minutes (jogging, cycling, or swimming)",
			"Bodyweight exercises: squats, lunges, push-ups (3 sets of 12)",
			"Core work: planks and crunches (3 sets)",
			"Flexibility: yoga or stretching (10 minutes)",
			"Cool-down: 5 minutes walking",
		},
		groceries: []cannedOption{
			{"Whole grain bread", ""}, {"Avocados", ""}, {"Eggs", "Extra nut butter"},
			{"Greek yogurt", "Coconut yogurt"}, {"Turkey", "Additional chickpeas"}, {"Fish", "Tofu"},
			{"Quinoa", ""}, {"Wild rice", ""}, {"Noodles", ""}, {"Hummus", ""}, {"Mixed vegetables", ""},
			{"Chickpeas", ""}, {"Fresh fruits", ""}, {"Mixed nuts", ""}, {"Granola", ""}, {"Tahini", ""},
		},
	},
	domain.GoalEndurance: {
		meals: map[domain.MealSlot]cannedMeal{
			domain.SlotBreakfast: {cannedOption{"Oatmeal with banana, honey and a side of scrambled eggs", "Oatmeal with banana, honey and soy yogurt"}, 25},
			domain.SlotLunch:     {cannedOption{"Whole wheat pasta with grilled chicken and vegetables", "Whole wheat pasta with lentil bolognese and vegetables"}, 35},
			domain.SlotDinner:    {cannedOption{"Salmon with sweet potato and steamed greens", "Tempeh with sweet potato and steamed greens"}, 30},
			domain.SlotSnacks:    {cannedOption{"Banana with a handful of dried fruit or an energy bar", ""}, 10},
		},
		exercises: []string{
			"Warm-up: 10 minutes easy jogging and dynamic stretching",
			"Steady-state run or ride: 45 minutes at conversational pace",
			"Interval training: 5x (3 min hard, 2 min easy)",
			"Core strengthening: planks, leg raises (3 sets)",
			"Cool-down: 10 minutes stretching",
		},
		groceries: []cannedOption{
			{"Oats", ""}, {"Bananas", ""}, {"Honey", ""}, {"Eggs", "Soy yogurt"},
			{"Whole wheat pasta", ""}, {"Chicken breast", "Lentils"}, {"Mixed vegetables", ""},
			{"Salmon", "Tempeh"}, {"Sweet potato", ""}, {"Leafy greens", ""}, {"Dried fruit", ""}, {"Energy bars", ""},
		},
	},
}

// genericPlan is served when nothing is known about the goal.
var genericPlan = domain.DailyPlan{
	MealPlan: domain.MealPlan{
		Breakfast: "Oatmeal with fruits and nuts (400 kcal)",
		Lunch:     "Grilled chicken with quinoa and vegetables (500 kcal)",
		Dinner:    "Salmon with sweet potato and broccoli (550 kcal)",
		Snacks:    "Greek yogurt with berries (200 kcal)",
	},
	Exercises: []string{
		"Warm-up: 5 minutes of light cardio",
		"Squats: 3 sets of 12 reps",
		"Push-ups: 3 sets of 10 reps",
		"Plank: 3 sets of 30 seconds",
		"Cool-down: 5 minutes stretching",
	},
	GroceryList: []string{
		"Oats", "Mixed fruits", "Nuts", "Chicken breast", "Quinoa",
		"Mixed vegetables", "Salmon", "Sweet potato", "Broccoli", "Greek yogurt",
	},
}

// FallbackPlan returns the canned plan for the profile's goal, scaled to the
// daily calories, or the generic plan when the goal is unknown. The result
// is always structurally complete.
func FallbackPlan(profile domain.UserProfile, dailyCalories int) *domain.DailyPlan {
	canned, ok := cannedPlans[profile.HealthGoal.Normalize()]
	if !ok {
		return GenericPlan()
	}

	veg := profile.Preferences().Vegetarian
	plan := &domain.DailyPlan{Source: domain.SourceFallback}
	for _, slot := range domain.MealSlots {
		m := canned.meals[slot]
		plan.MealPlan.Set(slot, fmt.Sprintf("%s (%d kcal)", m.pick(veg), dailyCalories*m.sharePct/100))
	}
	plan.Exercises = append([]string(nil), canned.exercises...)
	for _, g := range canned.groceries {
		plan.GroceryList = append(plan.GroceryList, g.pick(veg))
	}
	return plan
}

// GenericPlan returns a copy of the goal-agnostic canned plan.
func GenericPlan() *domain.DailyPlan {
	plan := genericPlan
	plan.Exercises = append([]string(nil), genericPlan.Exercises...)
	plan.GroceryList = append([]string(nil), genericPlan.GroceryList...)
	plan.Source = domain.SourceFallback
	return &plan
}
