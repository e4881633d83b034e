package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository/memory"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func logRepos(store *memory.Store) LogRepositories {
	return LogRepositories{
		Weights:   store.Weights(),
		Calories:  store.Calories(),
		Exercises: store.Exercises(),
		Hydration: store.Hydration(),
	}
}

func testProfile() domain.UserProfile {
	return domain.UserProfile{
		Age:             25,
		Gender:          domain.GenderMale,
		HeightCm:        175,
		WeightKg:        70,
		ActivityLevel:   domain.ActivitySedentary,
		HealthGoal:      domain.GoalWeightLoss,
		FoodPreferences: "no preference",
	}
}

// seedUser stores a user, with a profile when profile is non-nil.
func seedUser(t *testing.T, store *memory.Store, profile *domain.UserProfile) primitive.ObjectID {
	t.Helper()
	ctx := context.Background()
	id, err := store.Users().Create(ctx, &domain.User{Name: "Test", Email: primitive.NewObjectID().Hex() + "@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	if profile != nil {
		require.NoError(t, store.Users().UpdateProfile(ctx, id, *profile))
	}
	return id
}

// stubSource returns a fixed plan or error.
type stubSource struct {
	plan  *domain.DailyPlan
	err   error
	calls int
}

func (s *stubSource) GeneratePlan(_ context.Context, _ domain.UserProfile, _ int, _ domain.MacroTarget) (*domain.DailyPlan, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p := *s.plan
	return &p, nil
}

// memStorage keeps uploaded objects in memory.
type memStorage struct {
	mu         sync.Mutex
	objects    map[string][]byte
	putErr     error
	presignErr error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) PutObject(_ context.Context, key string, body io.Reader, size int64, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, body)
	if err != nil {
		return err
	}
	if n != size {
		return errors.New("size mismatch")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = buf.Bytes()
	return nil
}

func (m *memStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if m.presignErr != nil {
		return "", m.presignErr
	}
	return "https://storage.example.com/" + key + "?signed=1", nil
}
