package memory

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	id, err := users.Create(ctx, &domain.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{Name: "Ann", Email: "ANN@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	require.NoError(t, users.UpdateProfile(ctx, id, domain.UserProfile{Age: 30, Allergies: []string{"nuts"}}))
	got, err := users.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.True(t, got.HasProfile())
	assert.Equal(t, 30, got.Profile.Age)

	// Returned users are copies.
	got.Profile.Allergies[0] = "changed"
	again, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"nuts"}, again.Profile.Allergies)

	assert.ErrorIs(t, users.UpdateProfile(ctx, primitive.NewObjectID(), domain.UserProfile{}), repository.ErrNotFound)
}

func TestPlanRepositoryListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	plans := NewStore().Plans()
	user := primitive.NewObjectID()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := plans.Create(ctx, &domain.Plan{UserID: user, DailyCalories: 2000 + i, CreatedAt: base.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	_, err := plans.Create(ctx, &domain.Plan{UserID: primitive.NewObjectID(), CreatedAt: base})
	require.NoError(t, err)

	all, err := plans.ListByUser(ctx, user, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2002, all[0].DailyCalories)
	assert.Equal(t, 2000, all[2].DailyCalories)

	limited, err := plans.ListByUser(ctx, user, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	require.NoError(t, plans.SetExportKey(ctx, all[0].ID, "exports/k.xlsx"))
	p, err := plans.GetByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "exports/k.xlsx", p.ExportKey)
}

func TestHydrationAddsToTheSameDay(t *testing.T) {
	ctx := context.Background()
	hydration := NewStore().Hydration()
	user := primitive.NewObjectID()
	morning := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

	_, err := hydration.AddGlasses(ctx, user, morning, 3)
	require.NoError(t, err)
	entry, err := hydration.AddGlasses(ctx, user, morning.Add(9*time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Glasses)
	assert.Equal(t, domain.DayStart(morning), entry.Date)

	_, err = hydration.AddGlasses(ctx, user, morning.AddDate(0, 0, 1), 1)
	require.NoError(t, err)

	all, err := hydration.ListSince(ctx, user, time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 5, all[0].Glasses)

	// since is widened to the start of its day
	recent, err := hydration.ListSince(ctx, user, morning.AddDate(0, 0, 1).Add(12*time.Hour))
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestLogsListOldestFirstPerUser(t *testing.T) {
	ctx := context.Background()
	weights := NewStore().Weights()
	user := primitive.NewObjectID()
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{2, 0, 1} {
		_, err := weights.Create(ctx, &domain.WeightEntry{UserID: user, Date: day.AddDate(0, 0, offset), WeightKg: 80 - float64(offset)})
		require.NoError(t, err)
	}
	_, err := weights.Create(ctx, &domain.WeightEntry{UserID: primitive.NewObjectID(), Date: day, WeightKg: 60})
	require.NoError(t, err)

	_, err = weights.Create(ctx, &domain.WeightEntry{UserID: user})
	assert.Error(t, err)

	got, err := weights.ListSince(ctx, user, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 79.0, got[0].WeightKg)
	assert.Equal(t, 78.0, got[1].WeightKg)
}
