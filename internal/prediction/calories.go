package prediction

import (
	"math"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/nutrition"
)

// kcalPerKgWeekly converts a daily calorie delta into kg per week.
const kcalPerKgWeekly = 1100

var adaptiveGoalDelta = map[domain.HealthGoal]int{
	domain.GoalWeightLoss:     -500,
	domain.GoalAggressiveLoss: -750,
	domain.GoalMuscleGain:     300,
	domain.GoalMaintenance:    0,
	domain.GoalEndurance:      200,
}

// Weekly targets the adaptive model steers toward, in kg per week.
const (
	weightLossTargetKg = -0.5
	muscleGainTargetKg = 0.25
)

// CaloriePrediction is the adaptive calorie recommendation.
type CaloriePrediction struct {
	CurrentTDEE         int     `json:"current_tdee"`
	RecommendedCalories int     `json:"recommended_calories"`
	Adjustment          int     `json:"adjustment"`
	Reason              string  `json:"reason"`
	WeeklyTargetKg      float64 `json:"weekly_target"`
}

// AdaptiveCalories corrects the goal calorie target by how the observed
// weight trend compares with the goal's expected weekly change.
func AdaptiveCalories(bmr float64, activity domain.ActivityLevel, goal domain.HealthGoal, forecast TrendForecast) CaloriePrediction {
	goal = goal.Normalize()
	tdee := nutrition.TDEE(bmr, activity)
	delta := adaptiveGoalDelta[goal]

	adjustment := 0
	if forecast.HasTrend() {
		adjustment = trendAdjustment(goal, forecast.WeeklyChangeKg)
	}

	return CaloriePrediction{
		CurrentTDEE:         int(math.Round(tdee)),
		RecommendedCalories: int(tdee + float64(delta+adjustment)),
		Adjustment:          adjustment,
		Reason:              adjustmentReason(adjustment, goal),
		WeeklyTargetKg:      float64(delta) / kcalPerKgWeekly,
	}
}

func trendAdjustment(goal domain.HealthGoal, weeklyChange float64) int {
	switch goal {
	case domain.GoalWeightLoss:
		diff := weeklyChange - weightLossTargetKg
		if diff > 0.2 {
			return -100 // losing too slowly
		}
		if diff < -0.2 {
			return 100
		}
	case domain.GoalMuscleGain:
		diff := weeklyChange - muscleGainTargetKg
		if diff < -0.1 {
			return 150
		}
		if diff > 0.3 {
			return -50
		}
	}
	return 0
}

func adjustmentReason(adjustment int, goal domain.HealthGoal) string {
	switch {
	case adjustment == 0:
		return "Progress is on track"
	case adjustment > 0 && goal == domain.GoalWeightLoss:
		return "Losing weight too quickly - slightly increasing calories"
	case adjustment > 0:
		return "Not gaining enough - increasing calories"
	case goal == domain.GoalWeightLoss:
		return "Progress slower than expected - reducing calories"
	default:
		return "Gaining too fast - slightly reducing calories"
	}
}
