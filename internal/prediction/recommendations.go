package prediction

import (
	"fmt"
	"math"
	"time"

	"alcyxob/fitness-planner/internal/domain"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is one piece of advice with concrete next steps.
type Recommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Actions  []string `json:"actions"`
}

const (
	minWeighInsForTrend = 7
	minHydrationGlasses = 6
)

// Recommend runs the advice rules over the logs. The wellness tip is always
// last.
func Recommend(logs domain.UserLogs, asOf time.Time) []Recommendation {
	var out []Recommendation

	if rec, ok := weightRecommendation(logs.Weights); ok {
		out = append(out, rec)
	}
	if rec, ok := exerciseRecommendation(logs.Exercises, asOf); ok {
		out = append(out, rec)
	}
	if rec, ok := hydrationRecommendation(logs.Hydration, asOf); ok {
		out = append(out, rec)
	}

	return append(out, Recommendation{
		Category: "Wellness",
		Priority: PriorityLow,
		Title:    "Consistency is Key",
		Message:  "Focus on sustainable habits for long-term success",
		Actions: []string{
			"Log your progress daily",
			"Celebrate small wins",
			"Don't aim for perfection",
			"Stay patient with the process",
		},
	})
}

// weightRecommendation looks at newest minus oldest of the latest 14 weigh-ins.
func weightRecommendation(weights []domain.WeightEntry) (Recommendation, bool) {
	sorted := sortedWeights(weights)
	if len(sorted) > plateauWindow {
		sorted = sorted[len(sorted)-plateauWindow:]
	}
	if len(sorted) < minWeighInsForTrend {
		return Recommendation{}, false
	}

	change := sorted[len(sorted)-1].WeightKg - sorted[0].WeightKg
	switch {
	case math.Abs(change) < 0.2:
		return Recommendation{
			Category: "Weight Management",
			Priority: PriorityHigh,
			Title:    "Potential Plateau Detected",
			Message:  "Your weight hasn't changed much in the past week. Consider:",
			Actions: []string{
				"Adjust calorie intake by 100-200 calories",
				"Try a new exercise routine",
				"Review your meal portions",
				"Ensure you're drinking enough water",
			},
		}, true
	case change < -1.0:
		return Recommendation{
			Category: "Weight Management",
			Priority: PriorityMedium,
			Title:    "Rapid Weight Loss",
			Message:  "You're losing weight quickly. While this is progress, consider:",
			Actions: []string{
				"Ensure you're meeting minimum calorie needs",
				"Focus on nutrient-dense foods",
				"Monitor energy levels",
				"Consider slightly increasing calories",
			},
		}, true
	}
	return Recommendation{}, false
}

func exerciseRecommendation(logs []domain.ExerciseEntry, asOf time.Time) (Recommendation, bool) {
	days := distinctDaysWithin(logs, asOf, adherenceWindowDays)
	switch {
	case days < 3:
		return Recommendation{
			Category: "Exercise",
			Priority: PriorityHigh,
			Title:    "Increase Activity Level",
			Message:  fmt.Sprintf("You exercised %d days this week. Aim for at least 3-4 days.", days),
			Actions: []string{
				"Start with 20-minute walks",
				"Schedule workouts in your calendar",
				"Find an exercise buddy",
				"Try a new activity you enjoy",
			},
		}, true
	case days >= 5:
		return Recommendation{
			Category: "Exercise",
			Priority: PriorityLow,
			Title:    "Excellent Consistency!",
			Message:  "You're exercising regularly. Great job!",
			Actions: []string{
				"Consider progressive overload",
				"Vary your workout routine",
				"Ensure adequate rest days",
				"Track strength improvements",
			},
		}, true
	}
	return Recommendation{}, false
}

func hydrationRecommendation(logs []domain.HydrationEntry, asOf time.Time) (Recommendation, bool) {
	today := GlassesOn(logs, asOf)
	if today >= minHydrationGlasses {
		return Recommendation{}, false
	}
	return Recommendation{
		Category: "Hydration",
		Priority: PriorityMedium,
		Title:    "Increase Water Intake",
		Message:  fmt.Sprintf("You've logged %d glasses today. Aim for 8-10.", today),
		Actions: []string{
			"Set hourly water reminders",
			"Keep a water bottle nearby",
			"Drink a glass with each meal",
			"Track your daily intake",
		},
	}, true
}

// GlassesOn sums the glasses logged on the calendar day of t.
func GlassesOn(logs []domain.HydrationEntry, t time.Time) int {
	day := domain.DayStart(t)
	total := 0
	for _, l := range logs {
		if domain.DayStart(l.Date).Equal(day) {
			total += l.Glasses
		}
	}
	return total
}
