package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/nutrition"
	"alcyxob/fitness-planner/internal/prediction"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assumed diet adherence for the comprehensive success estimate, and the
// number of daily weigh-ins that counts as fully consistent logging.
const (
	EstimatedDietAdherence = 75.0
	loggingTargetEntries   = 30
)

// WeightPredictionResult is the weight forecast for a user. Message and
// Recommendation are set instead of Prediction when nothing was logged yet.
type WeightPredictionResult struct {
	CurrentWeightKg    *float64                  `json:"current_weight,omitempty"`
	Prediction         *prediction.TrendForecast `json:"prediction,omitempty"`
	DataPoints         int                       `json:"data_points"`
	AnalysisPeriodDays int                       `json:"analysis_period_days"`
	Message            string                    `json:"message,omitempty"`
	Recommendation     string                    `json:"recommendation,omitempty"`
}

// CaloriePredictionResult is the adaptive calorie recommendation.
type CaloriePredictionResult struct {
	Prediction prediction.CaloriePrediction `json:"prediction"`
	CurrentBMR float64                      `json:"current_bmr"`
	Goal       domain.HealthGoal            `json:"goal"`
}

// ProfileSnapshot is the part of the profile echoed with predictions.
type ProfileSnapshot struct {
	Age      int               `json:"age"`
	Gender   domain.Gender     `json:"gender"`
	WeightKg float64           `json:"weight"`
	HeightCm float64           `json:"height"`
	Goal     domain.HealthGoal `json:"goal"`
	BMR      float64           `json:"bmr"`
}

// ComprehensiveResult bundles every prediction with a success estimate.
type ComprehensiveResult struct {
	UserProfile       ProfileSnapshot                    `json:"user_profile"`
	Predictions       prediction.ComprehensivePrediction `json:"predictions"`
	SuccessPrediction prediction.SuccessPrediction       `json:"success_prediction"`
	GeneratedAt       time.Time                          `json:"generated_at"`
}

type PredictionService interface {
	WeightPrediction(ctx context.Context, userID primitive.ObjectID) (*WeightPredictionResult, error)
	CaloriePrediction(ctx context.Context, userID primitive.ObjectID) (*CaloriePredictionResult, error)
	Comprehensive(ctx context.Context, userID primitive.ObjectID) (*ComprehensiveResult, error)
	Success(adherence prediction.Adherence) prediction.SuccessPrediction
	Adherence(ctx context.Context, userID primitive.ObjectID, diet, logging *float64) (*prediction.AdherenceReport, error)
	Recommendations(ctx context.Context, userID primitive.ObjectID) ([]prediction.Recommendation, error)
}

type predictionService struct {
	userRepo repository.UserRepository
	progress ProgressService
	engine   *prediction.Engine
}

// NewPredictionService creates a prediction service reading logs through progress.
func NewPredictionService(userRepo repository.UserRepository, progress ProgressService, engine *prediction.Engine) PredictionService {
	return &predictionService{userRepo: userRepo, progress: progress, engine: engine}
}

func (s *predictionService) user(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *predictionService) profile(ctx context.Context, userID primitive.ObjectID) (domain.UserProfile, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if !user.HasProfile() {
		return domain.UserProfile{}, ErrProfileMissing
	}
	return *user.Profile, nil
}

func (s *predictionService) WeightPrediction(ctx context.Context, userID primitive.ObjectID) (*WeightPredictionResult, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}
	logs, err := s.progress.Logs(ctx, userID)
	if err != nil {
		return nil, err
	}
	weights := logs.Weights
	if len(weights) == 0 {
		return &WeightPredictionResult{
			Message:        "No weight data available for predictions",
			Recommendation: "Start logging your weight daily for accurate predictions",
		}, nil
	}

	forecast := s.engine.WeightTrend(weights)
	current := weights[len(weights)-1].WeightKg
	first := domain.DayStart(weights[0].Date)
	last := domain.DayStart(weights[len(weights)-1].Date)
	return &WeightPredictionResult{
		CurrentWeightKg:    &current,
		Prediction:         &forecast,
		DataPoints:         len(weights),
		AnalysisPeriodDays: int(last.Sub(first).Hours() / 24),
	}, nil
}

func (s *predictionService) CaloriePrediction(ctx context.Context, userID primitive.ObjectID) (*CaloriePredictionResult, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.progress.Logs(ctx, userID)
	if err != nil {
		return nil, err
	}
	bmr := nutrition.ProfileBMR(profile)
	return &CaloriePredictionResult{
		Prediction: s.engine.CalorieNeeds(profile, bmr, logs.Weights, logs.Calories),
		CurrentBMR: bmr,
		Goal:       profile.HealthGoal,
	}, nil
}

func (s *predictionService) Comprehensive(ctx context.Context, userID primitive.ObjectID) (*ComprehensiveResult, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.progress.Logs(ctx, userID)
	if err != nil {
		return nil, err
	}

	predictions := s.engine.Comprehensive(profile, logs)
	diet := EstimatedDietAdherence
	logging := float64(len(logs.Weights)) / loggingTargetEntries * 100

	return &ComprehensiveResult{
		UserProfile: ProfileSnapshot{
			Age:      profile.Age,
			Gender:   profile.Gender,
			WeightKg: profile.WeightKg,
			HeightCm: profile.HeightCm,
			Goal:     profile.HealthGoal,
			BMR:      nutrition.ProfileBMR(profile),
		},
		Predictions: predictions,
		SuccessPrediction: prediction.PredictSuccess(prediction.Adherence{
			ExerciseAdherence:  predictions.ExerciseAdherence.AdherenceRate,
			DietAdherence:      &diet,
			LoggingConsistency: &logging,
		}),
		GeneratedAt: s.engine.Now().UTC(),
	}, nil
}

func (s *predictionService) Success(adherence prediction.Adherence) prediction.SuccessPrediction {
	return prediction.PredictSuccess(adherence)
}

func (s *predictionService) Adherence(ctx context.Context, userID primitive.ObjectID, diet, logging *float64) (*prediction.AdherenceReport, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}
	logs, err := s.progress.Logs(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.Adherence(logs, diet, logging)
	return &report, nil
}

func (s *predictionService) Recommendations(ctx context.Context, userID primitive.ObjectID) ([]prediction.Recommendation, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}
	logs, err := s.progress.Logs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.Recommendations(logs), nil
}
