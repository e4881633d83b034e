package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestLogEntriesDefaultToNow(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(logRepos(memory.NewStore()), testClock)
	userID := primitive.NewObjectID()

	w, err := svc.LogWeight(ctx, userID, domain.WeightEntry{WeightKg: 80.5, Notes: "morning"})
	require.NoError(t, err)
	assert.Equal(t, testNow, w.Date)
	assert.Equal(t, userID, w.UserID)
	assert.False(t, w.ID.IsZero())

	burned := 300
	e, err := svc.LogExercise(ctx, userID, domain.ExerciseEntry{Name: "Run", DurationMin: 30, CaloriesBurned: &burned, Date: daysAgo(1)})
	require.NoError(t, err)
	assert.Equal(t, daysAgo(1), e.Date)
}

func TestLogValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(logRepos(memory.NewStore()), testClock)
	userID := primitive.NewObjectID()

	_, err := svc.LogWeight(ctx, userID, domain.WeightEntry{WeightKg: 0})
	assert.ErrorIs(t, err, ErrInvalidLogEntry)
	_, err = svc.LogCalories(ctx, userID, domain.CalorieEntry{Calories: -1})
	assert.ErrorIs(t, err, ErrInvalidLogEntry)
	_, err = svc.LogExercise(ctx, userID, domain.ExerciseEntry{DurationMin: 10})
	assert.ErrorIs(t, err, ErrInvalidLogEntry)
	_, err = svc.LogHydration(ctx, userID, time.Time{}, 0)
	assert.ErrorIs(t, err, ErrInvalidLogEntry)
}

func TestLogHydrationAccumulatesPerDay(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(logRepos(memory.NewStore()), testClock)
	userID := primitive.NewObjectID()

	_, err := svc.LogHydration(ctx, userID, time.Time{}, 3)
	require.NoError(t, err)
	entry, err := svc.LogHydration(ctx, userID, testNow.Add(-time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Glasses)
	assert.Equal(t, domain.DayStart(testNow), entry.Date)
}

func TestHistoriesUseDayWindows(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(logRepos(memory.NewStore()), testClock)
	userID := primitive.NewObjectID()

	for _, d := range []int{0, 6, 7, 29, 30} {
		_, err := svc.LogWeight(ctx, userID, domain.WeightEntry{WeightKg: 80, Date: daysAgo(d)})
		require.NoError(t, err)
		_, err = svc.LogCalories(ctx, userID, domain.CalorieEntry{Calories: 500, MealType: "lunch", Date: daysAgo(d)})
		require.NoError(t, err)
	}

	week, err := svc.WeightHistory(ctx, userID, 7)
	require.NoError(t, err)
	assert.Len(t, week, 2)

	month, err := svc.WeightHistory(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, month, 4)
	assert.True(t, month[0].Date.Before(month[3].Date))

	calories, err := svc.CalorieHistory(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, calories, 2)
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(logRepos(memory.NewStore()), testClock)
	userID := primitive.NewObjectID()

	for i, kg := range []float64{84, 83.2, 82.5} {
		_, err := svc.LogWeight(ctx, userID, domain.WeightEntry{WeightKg: kg, Date: daysAgo(10 - 5*i)})
		require.NoError(t, err)
	}
	for _, c := range []domain.CalorieEntry{
		{Calories: 450, MealType: "breakfast", Date: testNow.Add(-6 * time.Hour)},
		{Calories: 700, MealType: "lunch", Date: testNow.Add(-2 * time.Hour)},
		{Calories: 900, MealType: "dinner", Date: daysAgo(1)},
	} {
		_, err := svc.LogCalories(ctx, userID, c)
		require.NoError(t, err)
	}
	_, err := svc.LogExercise(ctx, userID, domain.ExerciseEntry{Name: "Bike", DurationMin: 45})
	require.NoError(t, err)
	_, err = svc.LogHydration(ctx, userID, daysAgo(1), 8)
	require.NoError(t, err)
	_, err = svc.LogHydration(ctx, userID, time.Time{}, 4)
	require.NoError(t, err)

	stats, err := svc.Progress(ctx, userID)
	require.NoError(t, err)

	require.NotNil(t, stats.CurrentWeightKg)
	assert.Equal(t, 82.5, *stats.CurrentWeightKg)
	assert.InDelta(t, -1.5, *stats.WeightChangeKg, 1e-9)
	assert.Equal(t, 1150, stats.TotalCaloriesToday)
	assert.Equal(t, 45, stats.TotalExerciseMinutesToday)
	assert.Equal(t, 4, stats.TotalHydrationToday)
	require.Len(t, stats.WeightHistory, 3)
	assert.Equal(t, 82.5, stats.WeightHistory[0].WeightKg)
	require.Len(t, stats.HydrationHistory, 2)
	assert.Equal(t, 4, stats.HydrationHistory[0].Glasses)
}

func TestProgressWithoutLogs(t *testing.T) {
	stats, err := NewProgressService(logRepos(memory.NewStore()), testClock).Progress(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, stats.CurrentWeightKg)
	assert.Nil(t, stats.WeightChangeKg)
	assert.Empty(t, stats.WeightHistory)
	assert.Zero(t, stats.TotalHydrationToday)
}
