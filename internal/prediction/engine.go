// Package prediction turns weight, calorie, exercise and hydration logs into
// forecasts, adaptive calorie targets, adherence scores and advice. All
// models are rule based and side-effect free.
package prediction

import (
	"time"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/nutrition"
)

// Engine wires the individual models together.
type Engine struct {
	trend *TrendAnalyzer
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now, which anchors the 7-day windows and "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithTrendAnalyzer replaces the default trend analyzer.
func WithTrendAnalyzer(a *TrendAnalyzer) Option {
	return func(e *Engine) { e.trend = a }
}

// NewEngine builds an engine with the default analyzer and the wall clock.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{trend: NewTrendAnalyzer(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// WeightTrend forecasts weight from the history.
func (e *Engine) WeightTrend(history []domain.WeightEntry) TrendForecast {
	return e.trend.Analyze(history)
}

// CalorieNeeds recommends a calorie target from the profile's BMR and the
// observed weight trend. The calorie history is accepted for parity with the
// log set but does not influence the model.
func (e *Engine) CalorieNeeds(profile domain.UserProfile, bmr float64, weights []domain.WeightEntry, _ []domain.CalorieEntry) CaloriePrediction {
	return AdaptiveCalories(bmr, profile.ActivityLevel, profile.HealthGoal, e.trend.Analyze(weights))
}

// ComprehensivePrediction is every prediction for one user.
type ComprehensivePrediction struct {
	WeightPrediction  TrendForecast     `json:"weight_prediction"`
	CaloriePrediction CaloriePrediction `json:"calorie_prediction"`
	HydrationNeeds    HydrationNeeds    `json:"hydration_needs"`
	ExerciseAdherence ExerciseAdherence `json:"exercise_adherence"`
	MealTiming        MealTiming        `json:"meal_timing"`
	PlateauRisk       PlateauRisk       `json:"plateau_risk"`
	MacroDistribution MacroDistribution `json:"macro_distribution"`
	MealPreferences   MealPreferences   `json:"meal_preferences"`
}

// Comprehensive runs every model over the profile and logs.
func (e *Engine) Comprehensive(profile domain.UserProfile, logs domain.UserLogs) ComprehensivePrediction {
	bmr := nutrition.ProfileBMR(profile)
	forecast := e.trend.Analyze(logs.Weights)
	now := e.now()

	return ComprehensivePrediction{
		WeightPrediction:  forecast,
		CaloriePrediction: AdaptiveCalories(bmr, profile.ActivityLevel, profile.HealthGoal, forecast),
		HydrationNeeds:    PredictHydrationNeeds(profile.WeightKg, profile.ActivityLevel),
		ExerciseAdherence: PredictExerciseAdherence(logs.Exercises, now),
		MealTiming:        PredictMealTiming(profile.HealthGoal),
		PlateauRisk:       PredictPlateauRisk(logs.Weights),
		MacroDistribution: PredictMacroDistribution(profile.HealthGoal, EnergyNormal),
		MealPreferences:   PredictMealPreferences(profile),
	}
}

// ExerciseAdherence scores the week ending now.
func (e *Engine) ExerciseAdherence(logs []domain.ExerciseEntry) ExerciseAdherence {
	return PredictExerciseAdherence(logs, e.now())
}

// Recommendations runs the advice rules as of now.
func (e *Engine) Recommendations(logs domain.UserLogs) []Recommendation {
	return Recommend(logs, e.now())
}

// Adherence builds the adherence report as of now.
func (e *Engine) Adherence(logs domain.UserLogs, diet, logging *float64) AdherenceReport {
	return BuildAdherenceReport(logs, diet, logging, e.now())
}
