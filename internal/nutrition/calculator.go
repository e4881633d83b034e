// Package nutrition holds the BMR, TDEE and macro arithmetic. Every function
// is pure; unknown activity levels and goals fall back to table defaults.
package nutrition

import (
	"math"

	"alcyxob/fitness-planner/internal/domain"
)

// DefaultActivityMultiplier applies to unknown activity levels.
const DefaultActivityMultiplier = 1.2

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
	domain.ActivityExtremelyActive:  1.9,
}

var goalCalorieDelta = map[domain.HealthGoal]float64{
	domain.GoalWeightLoss:  -500,
	domain.GoalMaintenance: 0,
	domain.GoalMuscleGain:  300,
	domain.GoalEndurance:   200,
}

// macroSplit is a protein/fat share of calories in whole percent; carbs take
// the remainder.
type macroSplit struct {
	proteinPct int
	fatPct     int
}

var defaultMacroSplit = macroSplit{proteinPct: 20, fatPct: 25}

var goalMacroSplit = map[domain.HealthGoal]macroSplit{
	domain.GoalMuscleGain: {proteinPct: 30, fatPct: 25},
	domain.GoalWeightLoss: {proteinPct: 25, fatPct: 30},
}

// ActivityMultiplier returns the TDEE multiplier for the activity level.
func ActivityMultiplier(level domain.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level.Normalize()]; ok {
		return m
	}
	return DefaultActivityMultiplier
}

// GoalDelta returns the calorie offset applied on top of TDEE for the goal.
func GoalDelta(goal domain.HealthGoal) float64 {
	return goalCalorieDelta[goal.Normalize()]
}

// BMR computes the Mifflin-St Jeor basal metabolic rate rounded to two
// decimals. Any gender other than male uses the female constant.
func BMR(age int, gender domain.Gender, weightKg, heightCm float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender.Normalize() == domain.GenderMale {
		base += 5
	} else {
		base -= 161
	}
	return Round(base, 2)
}

// ProfileBMR is BMR for a stored profile.
func ProfileBMR(p domain.UserProfile) float64 {
	return BMR(p.Age, p.Gender, p.WeightKg, p.HeightCm)
}

// TDEE scales BMR by the activity multiplier.
func TDEE(bmr float64, level domain.ActivityLevel) float64 {
	return bmr * ActivityMultiplier(level)
}

// DailyCalories is TDEE plus the goal delta, truncated.
func DailyCalories(bmr float64, level domain.ActivityLevel, goal domain.HealthGoal) int {
	return int(TDEE(bmr, level) + GoalDelta(goal))
}

// Macros splits daily calories into protein, carb and fat grams. Every gram
// count is truncated, so the macro energy never exceeds dailyCalories and
// falls short of it by less than one gram of each macro.
func Macros(dailyCalories int, goal domain.HealthGoal) domain.MacroTarget {
	split, ok := goalMacroSplit[goal.Normalize()]
	if !ok {
		split = defaultMacroSplit
	}
	carbPct := 100 - split.proteinPct - split.fatPct

	return domain.MacroTarget{
		ProteinG: dailyCalories * split.proteinPct / 100 / 4,
		CarbG:    dailyCalories * carbPct / 100 / 4,
		FatG:     dailyCalories * split.fatPct / 100 / 9,
	}
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
