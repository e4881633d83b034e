package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidLogEntry = errors.New("invalid log entry")

// Default look-back windows, in days, for the log listings.
const (
	DefaultWeightHistoryDays = 30
	DefaultLogHistoryDays    = 7

	progressWeightHistory    = 30
	predictionWindowDays     = 30
	progressHydrationHistory = 7
)

// ProgressStats summarizes a user's logs for the dashboard.
type ProgressStats struct {
	CurrentWeightKg           *float64                `json:"current_weight"`
	WeightChangeKg            *float64                `json:"weight_change"`
	TotalHydrationToday       int                     `json:"total_hydration_today"`
	TotalCaloriesToday        int                     `json:"total_calories_today"`
	TotalExerciseMinutesToday int                     `json:"total_exercise_minutes_today"`
	WeightHistory             []domain.WeightEntry    `json:"weight_history"`    // newest first
	HydrationHistory          []domain.HydrationEntry `json:"hydration_history"` // newest first
}

type ProgressService interface {
	LogWeight(ctx context.Context, userID primitive.ObjectID, entry domain.WeightEntry) (*domain.WeightEntry, error)
	LogCalories(ctx context.Context, userID primitive.ObjectID, entry domain.CalorieEntry) (*domain.CalorieEntry, error)
	LogExercise(ctx context.Context, userID primitive.ObjectID, entry domain.ExerciseEntry) (*domain.ExerciseEntry, error)
	LogHydration(ctx context.Context, userID primitive.ObjectID, date time.Time, glasses int) (*domain.HydrationEntry, error)

	// The history listings cover the last days days, oldest first.
	WeightHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.WeightEntry, error)
	CalorieHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.CalorieEntry, error)
	ExerciseHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.ExerciseEntry, error)
	HydrationHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.HydrationEntry, error)

	Progress(ctx context.Context, userID primitive.ObjectID) (*ProgressStats, error)
	// Logs loads the full weight history and the last 30 days of the others.
	Logs(ctx context.Context, userID primitive.ObjectID) (domain.UserLogs, error)
}

// LogRepositories groups the four progress log repositories.
type LogRepositories struct {
	Weights   repository.WeightLogRepository
	Calories  repository.CalorieLogRepository
	Exercises repository.ExerciseLogRepository
	Hydration repository.HydrationLogRepository
}

type progressService struct {
	repos LogRepositories
	now   func() time.Time
}

// NewProgressService creates a progress service. A nil clock means time.Now.
func NewProgressService(repos LogRepositories, clock func() time.Time) ProgressService {
	if clock == nil {
		clock = time.Now
	}
	return &progressService{repos: repos, now: clock}
}

func (s *progressService) dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return s.now().UTC()
	}
	return t.UTC()
}

// since returns the start of the window covering today and the days-1
// days before it.
func (s *progressService) since(days, fallback int) time.Time {
	if days <= 0 {
		days = fallback
	}
	return domain.DayStart(s.now()).AddDate(0, 0, -(days - 1))
}

// --- Logging ---

func (s *progressService) LogWeight(ctx context.Context, userID primitive.ObjectID, entry domain.WeightEntry) (*domain.WeightEntry, error) {
	if entry.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidLogEntry)
	}
	entry.UserID = userID
	entry.Date = s.dateOrNow(entry.Date)
	if _, err := s.repos.Weights.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("log weight: %w", err)
	}
	return &entry, nil
}

func (s *progressService) LogCalories(ctx context.Context, userID primitive.ObjectID, entry domain.CalorieEntry) (*domain.CalorieEntry, error) {
	if entry.Calories < 0 {
		return nil, fmt.Errorf("%w: calories cannot be negative", ErrInvalidLogEntry)
	}
	entry.UserID = userID
	entry.Date = s.dateOrNow(entry.Date)
	if _, err := s.repos.Calories.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("log calories: %w", err)
	}
	return &entry, nil
}

func (s *progressService) LogExercise(ctx context.Context, userID primitive.ObjectID, entry domain.ExerciseEntry) (*domain.ExerciseEntry, error) {
	if entry.Name == "" || entry.DurationMin < 0 {
		return nil, fmt.Errorf("%w: exercise needs a name and a non-negative duration", ErrInvalidLogEntry)
	}
	entry.UserID = userID
	entry.Date = s.dateOrNow(entry.Date)
	if _, err := s.repos.Exercises.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("log exercise: %w", err)
	}
	return &entry, nil
}

func (s *progressService) LogHydration(ctx context.Context, userID primitive.ObjectID, date time.Time, glasses int) (*domain.HydrationEntry, error) {
	if glasses <= 0 {
		return nil, fmt.Errorf("%w: glasses must be positive", ErrInvalidLogEntry)
	}
	entry, err := s.repos.Hydration.AddGlasses(ctx, userID, s.dateOrNow(date), glasses)
	if err != nil {
		return nil, fmt.Errorf("log hydration: %w", err)
	}
	return entry, nil
}

// --- Histories ---

func (s *progressService) WeightHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.WeightEntry, error) {
	return s.repos.Weights.ListSince(ctx, userID, s.since(days, DefaultWeightHistoryDays))
}

func (s *progressService) CalorieHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.CalorieEntry, error) {
	return s.repos.Calories.ListSince(ctx, userID, s.since(days, DefaultLogHistoryDays))
}

func (s *progressService) ExerciseHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.ExerciseEntry, error) {
	return s.repos.Exercises.ListSince(ctx, userID, s.since(days, DefaultLogHistoryDays))
}

func (s *progressService) HydrationHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.HydrationEntry, error) {
	return s.repos.Hydration.ListSince(ctx, userID, s.since(days, DefaultLogHistoryDays))
}

// --- Aggregates ---

func (s *progressService) Progress(ctx context.Context, userID primitive.ObjectID) (*ProgressStats, error) {
	weights, err := s.repos.Weights.ListSince(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}
	today := domain.DayStart(s.now())
	calories, err := s.repos.Calories.ListSince(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	exercises, err := s.repos.Exercises.ListSince(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	hydration, err := s.repos.Hydration.ListSince(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}

	stats := &ProgressStats{}
	if n := len(weights); n > 0 {
		current := weights[n-1].WeightKg
		change := current - weights[0].WeightKg
		stats.CurrentWeightKg = &current
		stats.WeightChangeKg = &change
	}
	tomorrow := today.AddDate(0, 0, 1)
	for _, c := range calories {
		if c.Date.Before(tomorrow) {
			stats.TotalCaloriesToday += c.Calories
		}
	}
	for _, e := range exercises {
		if e.Date.Before(tomorrow) {
			stats.TotalExerciseMinutesToday += e.DurationMin
		}
	}
	for _, h := range hydration {
		if h.Date.Equal(today) {
			stats.TotalHydrationToday += h.Glasses
		}
	}

	stats.WeightHistory = newestFirst(weights, progressWeightHistory)
	stats.HydrationHistory = newestFirst(hydration, progressHydrationHistory)
	return stats, nil
}

// newestFirst reverses an oldest-first slice into a new one of at most n entries.
func newestFirst[T any](oldestFirst []T, n int) []T {
	out := make([]T, 0, n)
	for i := len(oldestFirst) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, oldestFirst[i])
	}
	return out
}

func (s *progressService) Logs(ctx context.Context, userID primitive.ObjectID) (domain.UserLogs, error) {
	var logs domain.UserLogs
	var err error
	window := s.since(predictionWindowDays, predictionWindowDays)

	if logs.Weights, err = s.repos.Weights.ListSince(ctx, userID, time.Time{}); err != nil {
		return logs, err
	}
	if logs.Calories, err = s.repos.Calories.ListSince(ctx, userID, window); err != nil {
		return logs, err
	}
	if logs.Exercises, err = s.repos.Exercises.ListSince(ctx, userID, window); err != nil {
		return logs, err
	}
	if logs.Hydration, err = s.repos.Hydration.ListSince(ctx, userID, window); err != nil {
		return logs, err
	}
	return logs, nil
}
