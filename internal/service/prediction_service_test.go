package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/prediction"
	"alcyxob/fitness-planner/internal/repository/memory"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPredictionFixture(t *testing.T, profile *domain.UserProfile) (PredictionService, ProgressService, primitive.ObjectID) {
	t.Helper()
	store := memory.NewStore()
	progress := NewProgressService(logRepos(store), testClock)
	svc := NewPredictionService(store.Users(), progress, prediction.NewEngine(prediction.WithClock(testClock)))
	return svc, progress, seedUser(t, store, profile)
}

func TestWeightPredictionWithoutData(t *testing.T) {
	profile := testProfile()
	svc, _, userID := newPredictionFixture(t, &profile)

	got, err := svc.WeightPrediction(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, got.Prediction)
	assert.Equal(t, "No weight data available for predictions", got.Message)

	_, err = svc.WeightPrediction(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestWeightPrediction(t *testing.T) {
	ctx := context.Background()
	profile := testProfile()
	svc, progress, userID := newPredictionFixture(t, &profile)

	for i, kg := range []float64{80, 79.5, 79} {
		_, err := progress.LogWeight(ctx, userID, domain.WeightEntry{WeightKg: kg, Date: daysAgo(14 - 7*i)})
		require.NoError(t, err)
	}

	got, err := svc.WeightPrediction(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got.Prediction)
	assert.Equal(t, prediction.TrendDecreasing, got.Prediction.Trend)
	assert.Equal(t, -0.5, got.Prediction.WeeklyChangeKg)
	assert.Equal(t, 79.0, *got.CurrentWeightKg)
	assert.Equal(t, 3, got.DataPoints)
	assert.Equal(t, 14, got.AnalysisPeriodDays)
}

func TestCaloriePredictionNeedsProfile(t *testing.T) {
	svc, _, userID := newPredictionFixture(t, nil)
	_, err := svc.CaloriePrediction(context.Background(), userID)
	assert.ErrorIs(t, err, ErrProfileMissing)
}

func TestCaloriePrediction(t *testing.T) {
	profile := testProfile()
	svc, _, userID := newPredictionFixture(t, &profile)

	got, err := svc.CaloriePrediction(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1673.75, got.CurrentBMR)
	assert.Equal(t, domain.GoalWeightLoss, got.Goal)
	assert.Equal(t, 2009, got.Prediction.CurrentTDEE)
	assert.Zero(t, got.Prediction.Adjustment)
}

func TestComprehensiveAddsSuccessEstimate(t *testing.T) {
	ctx := context.Background()
	profile := testProfile()
	svc, progress, userID := newPredictionFixture(t, &profile)

	for d := 0; d < 3; d++ {
		_, err := progress.LogWeight(ctx, userID, domain.WeightEntry{WeightKg: 70, Date: daysAgo(d)})
		require.NoError(t, err)
	}

	got, err := svc.Comprehensive(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 1673.75, got.UserProfile.BMR)
	assert.Equal(t, testNow, got.GeneratedAt)
	assert.Equal(t, prediction.TrendStable, got.Predictions.WeightPrediction.Trend)
	// exercise 0, diet 75, logging 3/30
	assert.InDelta(t, 28.3, got.SuccessPrediction.SuccessProbability, 1e-9)
	assert.Equal(t, []string{"Increase exercise frequency", "Log progress more consistently"}, got.SuccessPrediction.KeyFactors)
}

func TestSuccessAndAdherence(t *testing.T) {
	ctx := context.Background()
	profile := testProfile()
	svc, progress, userID := newPredictionFixture(t, &profile)

	diet, logging := 90.0, 90.0
	got := svc.Success(prediction.Adherence{ExerciseAdherence: 90, DietAdherence: &diet, LoggingConsistency: &logging})
	assert.Equal(t, 90.0, got.SuccessProbability)

	for d := 0; d < 4; d++ {
		_, err := progress.LogExercise(ctx, userID, domain.ExerciseEntry{Name: "Swim", DurationMin: 40, Date: daysAgo(d)})
		require.NoError(t, err)
	}
	report, err := svc.Adherence(ctx, userID, &diet, &logging)
	require.NoError(t, err)
	assert.Equal(t, 57.1, report.ExerciseAdherencePct)
	assert.Equal(t, prediction.RiskUnknown, report.PlateauRisk)

	_, err = svc.Adherence(ctx, primitive.NewObjectID(), &diet, &logging)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecommendations(t *testing.T) {
	ctx := context.Background()
	profile := testProfile()
	svc, progress, userID := newPredictionFixture(t, &profile)

	_, err := progress.LogHydration(ctx, userID, testNow, 2)
	require.NoError(t, err)

	recs, err := svc.Recommendations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "You've logged 2 glasses today. Aim for 8-10.", recs[1].Message)
	assert.Equal(t, "Consistency is Key", recs[2].Title)
}
