package prediction

import (
	"math"
	"time"

	"alcyxob/fitness-planner/internal/domain"
)

// RiskLevel grades the chance of a weight plateau.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskUnknown  RiskLevel = "unknown"
)

const (
	adherenceWindowDays = 7
	plateauWindow       = 14
	defaultDurationMin  = 30
)

// ExerciseAdherence summarises how regularly the user trains.
type ExerciseAdherence struct {
	AdherenceRate     float64 `json:"adherence_rate"`
	BestTime          string  `json:"best_time"`
	PreferredDuration int     `json:"preferred_duration"`
	Recommendation    string  `json:"recommendation"`
}

// PredictExerciseAdherence scores the distinct training days in the week
// ending on asOf.
func PredictExerciseAdherence(logs []domain.ExerciseEntry, asOf time.Time) ExerciseAdherence {
	if len(logs) == 0 {
		return ExerciseAdherence{
			AdherenceRate:     0,
			BestTime:          "morning",
			PreferredDuration: defaultDurationMin,
			Recommendation:    "Start with short sessions",
		}
	}

	days := distinctDaysWithin(logs, asOf, adherenceWindowDays)
	rate := float64(days) / adherenceWindowDays * 100

	durations := make([]float64, 0, len(logs))
	for _, l := range logs {
		if l.DurationMin > 0 {
			durations = append(durations, float64(l.DurationMin))
		}
	}
	duration := defaultDurationMin
	if len(durations) > 0 {
		duration = int(math.Round(mean(durations)))
	}

	var recommendation string
	switch {
	case rate > 80:
		recommendation = "Excellent consistency! Consider increasing intensity"
	case rate > 50:
		recommendation = "Good progress! Try to add one more session"
	default:
		recommendation = "Start small - aim for 3 days per week"
	}

	return ExerciseAdherence{
		AdherenceRate:     round(rate, 1),
		BestTime:          "morning",
		PreferredDuration: duration,
		Recommendation:    recommendation,
	}
}

// PlateauRisk is the plateau assessment over the most recent two weeks of
// weigh-ins. Variance is omitted when there is not enough data.
type PlateauRisk struct {
	RiskLevel      RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	Variance       *float64  `json:"variance,omitempty"`
}

// PredictPlateauRisk flags low scatter across the latest 14 entries as a
// likely plateau.
func PredictPlateauRisk(history []domain.WeightEntry) PlateauRisk {
	if len(history) < plateauWindow {
		return PlateauRisk{
			RiskLevel:      RiskUnknown,
			Recommendation: "Need more data to assess plateau risk",
		}
	}

	sorted := sortedWeights(history)
	recent := sorted[len(sorted)-plateauWindow:]
	variance := populationVariance(weightValues(recent))

	risk := PlateauRisk{RiskLevel: RiskLow, Recommendation: "Good progress, continue current plan"}
	switch {
	case variance < 0.5:
		risk = PlateauRisk{RiskLevel: RiskHigh, Recommendation: "Consider calorie cycling or changing workout routine"}
	case variance < 1.0:
		risk = PlateauRisk{RiskLevel: RiskModerate, Recommendation: "Monitor closely, may need adjustments soon"}
	}
	v := round(variance, 2)
	risk.Variance = &v
	return risk
}

// Adherence inputs in percent. Nil diet and logging values take the
// defaults below.
type Adherence struct {
	ExerciseAdherence  float64  `json:"exercise_adherence"`
	DietAdherence      *float64 `json:"diet_adherence,omitempty"`
	LoggingConsistency *float64 `json:"logging_consistency,omitempty"`
}

const (
	DefaultDietAdherence      = 70.0
	DefaultLoggingConsistency = 50.0
)

// SuccessPrediction is the estimated chance of reaching the goal.
type SuccessPrediction struct {
	SuccessProbability float64  `json:"success_probability"`
	Insight            string   `json:"insight"`
	KeyFactors         []string `json:"key_factors"`
}

// PredictSuccess averages the three adherence factors, each capped to
// [0, 1], and names the factors worth improving. Missing diet and logging
// values take the defaults in the average but count as 0 for the key factors.
func PredictSuccess(a Adherence) SuccessPrediction {
	diet := DefaultDietAdherence
	if a.DietAdherence != nil {
		diet = *a.DietAdherence
	}
	logging := DefaultLoggingConsistency
	if a.LoggingConsistency != nil {
		logging = *a.LoggingConsistency
	}

	factors := []float64{
		clamp(a.ExerciseAdherence/100, 0, 1),
		clamp(diet/100, 0, 1),
		clamp(logging/100, 0, 1),
	}
	probability := mean(factors) * 100

	var insight string
	switch {
	case probability > 80:
		insight = "Excellent! You're on track to reach your goal"
	case probability > 60:
		insight = "Good progress! Small improvements will help"
	case probability > 40:
		insight = "Need more consistency to reach your goal"
	default:
		insight = "Consider reassessing your approach"
	}

	var keyFactors []string
	if a.ExerciseAdherence < 60 {
		keyFactors = append(keyFactors, "Increase exercise frequency")
	}
	if valueOrZero(a.DietAdherence) < 70 {
		keyFactors = append(keyFactors, "Improve diet adherence")
	}
	if valueOrZero(a.LoggingConsistency) < 50 {
		keyFactors = append(keyFactors, "Log progress more consistently")
	}
	if len(keyFactors) == 0 {
		keyFactors = []string{"Maintain current excellent habits"}
	}

	return SuccessPrediction{
		SuccessProbability: round(probability, 1),
		Insight:            insight,
		KeyFactors:         keyFactors,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// AdherenceReport bundles the adherence views of the insight engine.
type AdherenceReport struct {
	ExerciseAdherencePct  float64   `json:"exercise_adherence_pct"`
	PlateauRisk           RiskLevel `json:"plateau_risk"`
	SuccessProbabilityPct float64   `json:"success_probability_pct"`
	KeyFactors            []string  `json:"key_factors"`
}

// BuildAdherenceReport scores exercise and plateau risk from the logs and
// feeds the exercise rate into the success estimate.
func BuildAdherenceReport(logs domain.UserLogs, diet, logging *float64, asOf time.Time) AdherenceReport {
	exercise := PredictExerciseAdherence(logs.Exercises, asOf)
	plateau := PredictPlateauRisk(logs.Weights)
	success := PredictSuccess(Adherence{
		ExerciseAdherence:  exercise.AdherenceRate,
		DietAdherence:      diet,
		LoggingConsistency: logging,
	})
	return AdherenceReport{
		ExerciseAdherencePct:  exercise.AdherenceRate,
		PlateauRisk:           plateau.RiskLevel,
		SuccessProbabilityPct: success.SuccessProbability,
		KeyFactors:            success.KeyFactors,
	}
}
