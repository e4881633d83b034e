package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/logger"
	"alcyxob/fitness-planner/internal/nutrition"
	"alcyxob/fitness-planner/internal/planner"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrProfileMissing = errors.New("profile has not been filled in yet")
	ErrInvalidProfile = errors.New("invalid profile: age must be 1-120, height and weight positive")
	ErrPlanNotFound   = errors.New("plan not found")
	ErrPlanGeneration = errors.New("failed to generate plan")
)

const (
	// DefaultPlanHistory is how many plans ListPlans returns without a limit.
	DefaultPlanHistory = 20
	maxAgeYears        = 120
)

// ProfileSummary is a profile with the targets computed from it.
type ProfileSummary struct {
	Profile       domain.UserProfile `json:"profile"`
	BMR           float64            `json:"bmr"`
	DailyCalories int                `json:"daily_calories"`
	Macros        domain.MacroTarget `json:"macros"`
}

type PlanService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileSummary, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile domain.UserProfile) (*ProfileSummary, error)
	// GeneratePlan builds and stores a plan for the stored profile. A non-nil
	// profile replaces the stored one first.
	GeneratePlan(ctx context.Context, userID primitive.ObjectID, profile *domain.UserProfile) (*domain.Plan, error)
	ListPlans(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Plan, error)
	GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.Plan, error)
}

// --- Service Implementation ---

type planService struct {
	userRepo repository.UserRepository
	planRepo repository.PlanRepository
	source   planner.PlanSource
	now      func() time.Time
}

// NewPlanService creates a plan service that generates plans with source.
func NewPlanService(userRepo repository.UserRepository, planRepo repository.PlanRepository, source planner.PlanSource) PlanService {
	return &planService{
		userRepo: userRepo,
		planRepo: planRepo,
		source:   source,
		now:      time.Now,
	}
}

// ValidateProfile normalizes the enum fields and checks the numeric ones.
func ValidateProfile(p domain.UserProfile) (domain.UserProfile, error) {
	if p.Age <= 0 || p.Age > maxAgeYears || p.HeightCm <= 0 || p.WeightKg <= 0 {
		return p, ErrInvalidProfile
	}
	p.Gender = p.Gender.Normalize()
	p.ActivityLevel = p.ActivityLevel.Normalize()
	p.HealthGoal = p.HealthGoal.Normalize()
	return p, nil
}

// Summarize computes BMR, calorie target and macros for a profile.
func Summarize(p domain.UserProfile) ProfileSummary {
	bmr := nutrition.ProfileBMR(p)
	calories := nutrition.DailyCalories(bmr, p.ActivityLevel, p.HealthGoal)
	return ProfileSummary{
		Profile:       p,
		BMR:           bmr,
		DailyCalories: calories,
		Macros:        nutrition.Macros(calories, p.HealthGoal),
	}
}

func (s *planService) profile(ctx context.Context, userID primitive.ObjectID) (domain.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.UserProfile{}, ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	if !user.HasProfile() {
		return domain.UserProfile{}, ErrProfileMissing
	}
	return *user.Profile, nil
}

func (s *planService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileSummary, error) {
	p, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(p)
	return &summary, nil
}

func (s *planService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile domain.UserProfile) (*ProfileSummary, error) {
	p, err := ValidateProfile(profile)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	summary := Summarize(p)
	return &summary, nil
}

func (s *planService) GeneratePlan(ctx context.Context, userID primitive.ObjectID, profile *domain.UserProfile) (*domain.Plan, error) {
	var summary *ProfileSummary
	var err error
	if profile != nil {
		summary, err = s.UpdateProfile(ctx, userID, *profile)
	} else {
		summary, err = s.GetProfile(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	daily, err := s.source.GeneratePlan(ctx, summary.Profile, summary.DailyCalories, summary.Macros)
	if err != nil {
		logger.Error("plan generation failed", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}

	plan := &domain.Plan{
		UserID:        userID,
		BMR:           summary.BMR,
		DailyCalories: summary.DailyCalories,
		Macros:        summary.Macros,
		Plan:          *daily,
		CreatedAt:     s.now().UTC(),
	}
	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}
	plan.ID = id

	logger.Info("plan generated",
		zap.String("userId", userID.Hex()),
		zap.String("planId", id.Hex()),
		zap.String("source", daily.Source),
		zap.Int("dailyCalories", plan.DailyCalories))
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Plan, error) {
	if limit <= 0 {
		limit = DefaultPlanHistory
	}
	return s.planRepo.ListByUser(ctx, userID, limit)
}

// GetPlan returns the plan only if it belongs to userID.
func (s *planService) GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}
