// Package memory implements the repository interfaces on in-process maps.
// It backs the server when no MongoDB is configured and serves as the
// repository layer in tests.
package memory

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection. The zero value is not usable; call NewStore.
type Store struct {
	mu        sync.RWMutex
	users     map[primitive.ObjectID]domain.User
	plans     map[primitive.ObjectID]domain.Plan
	weights   []domain.WeightEntry
	calories  []domain.CalorieEntry
	exercises []domain.ExerciseEntry
	hydration []domain.HydrationEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users: make(map[primitive.ObjectID]domain.User),
		plans: make(map[primitive.ObjectID]domain.Plan),
	}
}

// Users returns the store's user repository.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Plans returns the store's plan repository.
func (s *Store) Plans() repository.PlanRepository { return planRepo{s} }

func (s *Store) Weights() repository.WeightLogRepository { return weightRepo{s} }

func (s *Store) Calories() repository.CalorieLogRepository { return calorieRepo{s} }

func (s *Store) Exercises() repository.ExerciseLogRepository { return exerciseRepo{s} }

func (s *Store) Hydration() repository.HydrationLogRepository { return hydrationRepo{s} }

// --- Users ---

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return primitive.NilObjectID, errors.New("user email and password hash are required")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = cloneUser(*user)
	return user.ID, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			out := cloneUser(u)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (r userRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, profile domain.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Profile = &profile
	u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = cloneUser(u)
	return nil
}

func cloneUser(u domain.User) domain.User {
	if u.Profile != nil {
		p := *u.Profile
		p.Allergies = append([]string(nil), p.Allergies...)
		u.Profile = &p
	}
	return u
}

// --- Plans ---

type planRepo struct{ s *Store }

func (r planRepo) Create(_ context.Context, plan *domain.Plan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("plan requires userId")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	plan.ID = primitive.NewObjectID()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	r.s.plans[plan.ID] = *plan
	return plan.ID, nil
}

func (r planRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r planRepo) ListByUser(_ context.Context, userID primitive.ObjectID, limit int64) ([]domain.Plan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	plans := []domain.Plan{}
	for _, p := range r.s.plans {
		if p.UserID == userID {
			plans = append(plans, p)
		}
	}
	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			// ObjectIDs grow with creation time.
			return plans[i].ID.Hex() > plans[j].ID.Hex()
		}
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	if limit > 0 && int64(len(plans)) > limit {
		plans = plans[:limit]
	}
	return plans, nil
}

func (r planRepo) SetExportKey(_ context.Context, id primitive.ObjectID, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.plans[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.ExportKey = key
	r.s.plans[id] = p
	return nil
}

// --- Logs ---

func validateLog(userID primitive.ObjectID, date time.Time) error {
	if userID == primitive.NilObjectID || date.IsZero() {
		return errors.New("log entry requires userId and date")
	}
	return nil
}

// filterSince keeps the user's entries dated at or after since, oldest first.
func filterSince[T any](all []T, userID primitive.ObjectID, since time.Time, key func(T) (primitive.ObjectID, time.Time)) []T {
	out := []T{}
	for _, e := range all {
		owner, date := key(e)
		if owner == userID && (since.IsZero() || !date.Before(since)) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		_, a := key(out[i])
		_, b := key(out[j])
		return a.Before(b)
	})
	return out
}

type weightRepo struct{ s *Store }

func (r weightRepo) Create(_ context.Context, e *domain.WeightEntry) (primitive.ObjectID, error) {
	if err := validateLog(e.UserID, e.Date); err != nil {
		return primitive.NilObjectID, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = primitive.NewObjectID()
	r.s.weights = append(r.s.weights, *e)
	return e.ID, nil
}

func (r weightRepo) ListSince(_ context.Context, userID primitive.ObjectID, since time.Time) ([]domain.WeightEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSince(r.s.weights, userID, since, func(e domain.WeightEntry) (primitive.ObjectID, time.Time) {
		return e.UserID, e.Date
	}), nil
}

type calorieRepo struct{ s *Store }

func (r calorieRepo) Create(_ context.Context, e *domain.CalorieEntry) (primitive.ObjectID, error) {
	if err := validateLog(e.UserID, e.Date); err != nil {
		return primitive.NilObjectID, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = primitive.NewObjectID()
	r.s.calories = append(r.s.calories, *e)
	return e.ID, nil
}

func (r calorieRepo) ListSince(_ context.Context, userID primitive.ObjectID, since time.Time) ([]domain.CalorieEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSince(r.s.calories, userID, since, func(e domain.CalorieEntry) (primitive.ObjectID, time.Time) {
		return e.UserID, e.Date
	}), nil
}

type exerciseRepo struct{ s *Store }

func (r exerciseRepo) Create(_ context.Context, e *domain.ExerciseEntry) (primitive.ObjectID, error) {
	if err := validateLog(e.UserID, e.Date); err != nil {
		return primitive.NilObjectID, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = primitive.NewObjectID()
	r.s.exercises = append(r.s.exercises, *e)
	return e.ID, nil
}

func (r exerciseRepo) ListSince(_ context.Context, userID primitive.ObjectID, since time.Time) ([]domain.ExerciseEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSince(r.s.exercises, userID, since, func(e domain.ExerciseEntry) (primitive.ObjectID, time.Time) {
		return e.UserID, e.Date
	}), nil
}

type hydrationRepo struct{ s *Store }

func (r hydrationRepo) AddGlasses(_ context.Context, userID primitive.ObjectID, date time.Time, glasses int) (*domain.HydrationEntry, error) {
	if err := validateLog(userID, date); err != nil {
		return nil, err
	}
	day := domain.DayStart(date)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.hydration {
		if e.UserID == userID && e.Date.Equal(day) {
			r.s.hydration[i].Glasses += glasses
			out := r.s.hydration[i]
			return &out, nil
		}
	}
	entry := domain.HydrationEntry{ID: primitive.NewObjectID(), UserID: userID, Date: day, Glasses: glasses}
	r.s.hydration = append(r.s.hydration, entry)
	return &entry, nil
}

func (r hydrationRepo) ListSince(_ context.Context, userID primitive.ObjectID, since time.Time) ([]domain.HydrationEntry, error) {
	if !since.IsZero() {
		since = domain.DayStart(since)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterSince(r.s.hydration, userID, since, func(e domain.HydrationEntry) (primitive.ObjectID, time.Time) {
		return e.UserID, e.Date
	}), nil
}
