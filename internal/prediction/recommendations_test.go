package prediction

import (
	"testing"
	"time"

	"alcyxob/fitness-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glasses(day, n int) domain.HydrationEntry {
	return domain.HydrationEntry{Date: time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC), Glasses: n}
}

func weightsEndingOn(values ...float64) []domain.WeightEntry {
	out := make([]domain.WeightEntry, len(values))
	for i, kg := range values {
		out[i] = domain.WeightEntry{Date: asOf.AddDate(0, 0, i-len(values)+1), WeightKg: kg}
	}
	return out
}

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommendPlateauLowActivityAndHydration(t *testing.T) {
	logs := domain.UserLogs{
		Weights:   weightsEndingOn(80, 80.1, 79.9, 80, 80.1, 80, 80.05, 80.1),
		Exercises: []domain.ExerciseEntry{session(9, 30)},
		Hydration: []domain.HydrationEntry{glasses(10, 2), glasses(10, 2), glasses(9, 10)},
	}

	recs := Recommend(logs, asOf)

	require.Len(t, recs, 4)
	assert.Equal(t, []string{
		"Potential Plateau Detected", "Increase Activity Level", "Increase Water Intake", "Consistency is Key",
	}, titles(recs))

	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, "Weight Management", recs[0].Category)
	assert.Len(t, recs[0].Actions, 4)
	assert.Equal(t, "You exercised 1 days this week. Aim for at least 3-4 days.", recs[1].Message)
	assert.Equal(t, "You've logged 4 glasses today. Aim for 8-10.", recs[2].Message)
	assert.Equal(t, PriorityMedium, recs[2].Priority)
	assert.Equal(t, "Wellness", recs[3].Category)
	assert.Equal(t, PriorityLow, recs[3].Priority)
}

func TestRecommendRapidLossAndConsistency(t *testing.T) {
	var exercises []domain.ExerciseEntry
	for d := 5; d <= 10; d++ {
		exercises = append(exercises, session(d, 40))
	}
	logs := domain.UserLogs{
		Weights:   weightsEndingOn(85, 84.8, 84.5, 84.2, 84, 83.8, 83.5),
		Exercises: exercises,
		Hydration: []domain.HydrationEntry{glasses(10, 8)},
	}

	recs := Recommend(logs, asOf)

	assert.Equal(t, []string{"Rapid Weight Loss", "Excellent Consistency!", "Consistency is Key"}, titles(recs))
	assert.Equal(t, PriorityMedium, recs[0].Priority)
	assert.Equal(t, PriorityLow, recs[1].Priority)
}

func TestRecommendNeedsSevenWeighIns(t *testing.T) {
	logs := domain.UserLogs{
		Weights:   weightsEndingOn(80, 80, 80, 80, 80, 80),
		Exercises: []domain.ExerciseEntry{session(10, 30), session(9, 30), session(8, 30)},
		Hydration: []domain.HydrationEntry{glasses(10, 6)},
	}

	recs := Recommend(logs, asOf)

	assert.Equal(t, []string{"Consistency is Key"}, titles(recs))
}

func TestRecommendOnlyLooksAtLatestFourteenWeighIns(t *testing.T) {
	// A large early drop outside the window must not count.
	values := []float64{95, 90}
	for i := 0; i < 14; i++ {
		values = append(values, 80)
	}
	recs := Recommend(domain.UserLogs{Weights: weightsEndingOn(values...)}, asOf)
	assert.Equal(t, "Potential Plateau Detected", recs[0].Title)
}

func TestRecommendEmptyLogs(t *testing.T) {
	recs := Recommend(domain.UserLogs{}, asOf)
	assert.Equal(t, []string{"Increase Activity Level", "Increase Water Intake", "Consistency is Key"}, titles(recs))
	assert.Equal(t, "You've logged 0 glasses today. Aim for 8-10.", recs[1].Message)
}

func TestGlassesOn(t *testing.T) {
	logs := []domain.HydrationEntry{glasses(10, 3), glasses(10, 1), glasses(9, 7)}
	assert.Equal(t, 4, GlassesOn(logs, asOf))
	assert.Equal(t, 7, GlassesOn(logs, asOf.AddDate(0, 0, -1)))
	assert.Zero(t, GlassesOn(logs, asOf.AddDate(0, 0, 1)))
}
