package repository

import (
	"alcyxob/fitness-planner/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile domain.UserProfile) error
}

// PlanRepository stores generated plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error)
	// ListByUser returns the user's plans newest first. limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Plan, error)
	SetExportKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// The log repositories return entries oldest first. A zero since returns the
// whole history.

type WeightLogRepository interface {
	Create(ctx context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error)
	ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.WeightEntry, error)
}

type CalorieLogRepository interface {
	Create(ctx context.Context, entry *domain.CalorieEntry) (primitive.ObjectID, error)
	ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.CalorieEntry, error)
}

type ExerciseLogRepository interface {
	Create(ctx context.Context, entry *domain.ExerciseEntry) (primitive.ObjectID, error)
	ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.ExerciseEntry, error)
}

// HydrationLogRepository keeps one document per user and day.
type HydrationLogRepository interface {
	// AddGlasses adds to the glasses already logged on the day of date,
	// creating the day's entry if needed, and returns the updated entry.
	AddGlasses(ctx context.Context, userID primitive.ObjectID, date time.Time, glasses int) (*domain.HydrationEntry, error)
	ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.HydrationEntry, error)
}
