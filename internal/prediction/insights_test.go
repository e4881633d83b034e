package prediction

import (
	"testing"
	"time"

	"alcyxob/fitness-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func session(day, minutes int) domain.ExerciseEntry {
	return domain.ExerciseEntry{
		Date:        time.Date(2024, time.March, day, 7, 0, 0, 0, time.UTC),
		Name:        "Run",
		DurationMin: minutes,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestPredictExerciseAdherence(t *testing.T) {
	logs := []domain.ExerciseEntry{
		session(10, 30), session(10, 20), session(9, 45),
		session(7, 60), session(4, 25),
		session(3, 40), // outside the week ending on the 10th
	}

	got := PredictExerciseAdherence(logs, asOf)

	assert.Equal(t, 57.1, got.AdherenceRate)
	assert.Equal(t, "morning", got.BestTime)
	assert.Equal(t, 37, got.PreferredDuration)
	assert.Equal(t, "Good progress! Try to add one more session", got.Recommendation)
}

func TestPredictExerciseAdherenceBuckets(t *testing.T) {
	var everyDay []domain.ExerciseEntry
	for d := 4; d <= 10; d++ {
		everyDay = append(everyDay, session(d, 30))
	}
	full := PredictExerciseAdherence(everyDay, asOf)
	assert.Equal(t, 100.0, full.AdherenceRate)
	assert.Equal(t, "Excellent consistency! Consider increasing intensity", full.Recommendation)

	stale := PredictExerciseAdherence([]domain.ExerciseEntry{session(1, 0)}, asOf)
	assert.Zero(t, stale.AdherenceRate)
	assert.Equal(t, 30, stale.PreferredDuration)
	assert.Equal(t, "Start small - aim for 3 days per week", stale.Recommendation)

	empty := PredictExerciseAdherence(nil, asOf)
	assert.Zero(t, empty.AdherenceRate)
	assert.Equal(t, 30, empty.PreferredDuration)
	assert.Equal(t, "Start with short sessions", empty.Recommendation)
}

func flatWeights(n int, kg float64) []domain.WeightEntry {
	out := make([]domain.WeightEntry, n)
	for i := range out {
		out[i] = weighIn(i, kg)
	}
	return out
}

func TestPredictPlateauRisk(t *testing.T) {
	high := PredictPlateauRisk(flatWeights(14, 80))
	assert.Equal(t, RiskHigh, high.RiskLevel)
	assert.Equal(t, "Consider calorie cycling or changing workout routine", high.Recommendation)
	require.NotNil(t, high.Variance)
	assert.Zero(t, *high.Variance)

	unknown := PredictPlateauRisk(flatWeights(13, 80))
	assert.Equal(t, RiskUnknown, unknown.RiskLevel)
	assert.Equal(t, "Need more data to assess plateau risk", unknown.Recommendation)
	assert.Nil(t, unknown.Variance)

	alternating := func(a, b float64) []domain.WeightEntry {
		out := make([]domain.WeightEntry, 14)
		for i := range out {
			kg := a
			if i%2 == 1 {
				kg = b
			}
			out[i] = weighIn(i, kg)
		}
		return out
	}

	moderate := PredictPlateauRisk(alternating(80, 81.5))
	assert.Equal(t, RiskModerate, moderate.RiskLevel)
	assert.Equal(t, 0.56, *moderate.Variance)

	low := PredictPlateauRisk(alternating(79, 81))
	assert.Equal(t, RiskLow, low.RiskLevel)
	assert.Equal(t, "Good progress, continue current plan", low.Recommendation)
}

func TestPredictPlateauRiskUsesMostRecentFourteen(t *testing.T) {
	// Recent flat weigh-ins listed before older scattered ones; order must
	// come from the dates.
	var history []domain.WeightEntry
	for i := 5; i < 19; i++ {
		history = append(history, weighIn(i, 80))
	}
	for i := 0; i < 5; i++ {
		history = append(history, weighIn(i, 95-float64(i)*3))
	}

	assert.Equal(t, RiskHigh, PredictPlateauRisk(history).RiskLevel)
}

func TestPredictSuccess(t *testing.T) {
	tests := []struct {
		name        string
		in          Adherence
		probability float64
		insight     string
		factors     []string
	}{
		{
			"defaults for diet and logging",
			Adherence{ExerciseAdherence: 100},
			73.3, "Good progress! Small improvements will help",
			[]string{"Improve diet adherence", "Log progress more consistently"},
		},
		{
			"missing values still flagged",
			Adherence{ExerciseAdherence: 90},
			70, "Good progress! Small improvements will help",
			[]string{"Improve diet adherence", "Log progress more consistently"},
		},
		{
			"supplied values at the thresholds",
			Adherence{ExerciseAdherence: 60, DietAdherence: floatPtr(70), LoggingConsistency: floatPtr(50)},
			60, "Need more consistency to reach your goal",
			[]string{"Maintain current excellent habits"},
		},
		{
			"factors capped at one",
			Adherence{ExerciseAdherence: 150, DietAdherence: floatPtr(120), LoggingConsistency: floatPtr(100)},
			100, "Excellent! You're on track to reach your goal",
			[]string{"Maintain current excellent habits"},
		},
		{
			"nothing logged",
			Adherence{ExerciseAdherence: 0, DietAdherence: floatPtr(0), LoggingConsistency: floatPtr(0)},
			0, "Consider reassessing your approach",
			[]string{"Increase exercise frequency", "Improve diet adherence", "Log progress more consistently"},
		},
		{
			"negative values floor at zero",
			Adherence{ExerciseAdherence: -40, DietAdherence: floatPtr(100), LoggingConsistency: floatPtr(100)},
			66.7, "Good progress! Small improvements will help",
			[]string{"Increase exercise frequency"},
		},
		{
			"middling",
			Adherence{ExerciseAdherence: 50, DietAdherence: floatPtr(60), LoggingConsistency: floatPtr(40)},
			50, "Need more consistency to reach your goal",
			[]string{"Increase exercise frequency", "Improve diet adherence", "Log progress more consistently"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictSuccess(tt.in)
			assert.InDelta(t, tt.probability, got.SuccessProbability, 1e-9)
			assert.Equal(t, tt.insight, got.Insight)
			assert.Equal(t, tt.factors, got.KeyFactors)
		})
	}
}

func TestBuildAdherenceReport(t *testing.T) {
	logs := domain.UserLogs{
		Weights:   flatWeights(14, 70),
		Exercises: []domain.ExerciseEntry{session(10, 30), session(8, 30), session(6, 30)},
	}

	report := BuildAdherenceReport(logs, floatPtr(80), floatPtr(60), asOf)

	assert.Equal(t, 42.9, report.ExerciseAdherencePct)
	assert.Equal(t, RiskHigh, report.PlateauRisk)
	assert.Equal(t, 61.0, report.SuccessProbabilityPct)
	assert.Equal(t, []string{"Increase exercise frequency"}, report.KeyFactors)
}
