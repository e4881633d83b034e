package main

import (
	"alcyxob/fitness-planner/internal/api"
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/logger"
	"alcyxob/fitness-planner/internal/planner"
	"alcyxob/fitness-planner/internal/prediction"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/memory"
	"alcyxob/fitness-planner/internal/repository/mongo"
	"alcyxob/fitness-planner/internal/service"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// repositories is the persistence backend the services run on.
type repositories struct {
	users repository.UserRepository
	plans repository.PlanRepository
	logs  service.LogRepositories
	close func()
}

// @title Diet & Fitness Planner API
// @version 1.0
// @description Personalized meal and exercise plans, progress logging and weight predictions.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not read .env file: %v", err)
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if err := logger.Init(cfg.IsProduction()); err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer logger.Close()
	logger.Info("Starting Fitness Planner Server...", zap.String("environment", cfg.Server.Environment))

	// --- Persistence ---
	repos, err := openRepositories(cfg.Database)
	if err != nil {
		logger.Fatal("Could not initialize persistence", zap.Error(err))
	}
	defer repos.close()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
	} else {
		logger.Warn("S3 bucket not configured, plan export is disabled")
	}

	// --- Initialize Services ---
	source := newPlanSource(cfg)
	engine := prediction.NewEngine()

	authService := service.NewAuthService(repos.users, cfg.JWT.Secret, cfg.JWT.Expiration)
	planService := service.NewPlanService(repos.users, repos.plans, source)
	progressService := service.NewProgressService(repos.logs, nil)
	predictionService := service.NewPredictionService(repos.users, progressService, engine)
	exportService := service.NewExportService(planService, repos.plans, fileStorage, storage.DefaultPresignedURLExpiry)

	// --- Initialize Gin Engine ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api.SetupRoutes(router, cfg.JWT.Secret, api.Services{
		Auth:       authService,
		Plans:      planService,
		Progress:   progressService,
		Prediction: predictionService,
		Export:     exportService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 10*time.Second, // plan generation may wait on the LLM
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("Server starting", zap.String("address", cfg.Server.Address))

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting.")
}

// openRepositories connects to MongoDB, or returns the in-memory store for
// the memory:// URI.
func openRepositories(cfg config.DatabaseConfig) (*repositories, error) {
	if cfg.InMemory() {
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users: store.Users(),
			plans: store.Plans(),
			logs: service.LogRepositories{
				Weights:   store.Weights(),
				Calories:  store.Calories(),
				Exercises: store.Exercises(),
				Hydration: store.Hydration(),
			},
			close: func() {},
		}, nil
	}

	dbClient, err := mongo.ConnectDB(cfg.URI)
	if err != nil {
		return nil, err
	}
	appDB := dbClient.Database(cfg.Name)
	logger.Info("Database connection established", zap.String("database", cfg.Name))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB)
		logger.Info("Index creation process completed")
	}()

	return &repositories{
		users: mongo.NewMongoUserRepository(appDB),
		plans: mongo.NewMongoPlanRepository(appDB),
		logs: service.LogRepositories{
			Weights:   mongo.NewMongoWeightLogRepository(appDB),
			Calories:  mongo.NewMongoCalorieLogRepository(appDB),
			Exercises: mongo.NewMongoExerciseLogRepository(appDB),
			Hydration: mongo.NewMongoHydrationLogRepository(appDB),
		},
		close: func() {
			if err := mongo.DisconnectDB(dbClient); err != nil {
				logger.Error("Failed to disconnect MongoDB", zap.Error(err))
			}
		},
	}, nil
}

// newPlanSource picks the generative planner when it is configured with an
// API key, the algorithmic one otherwise.
func newPlanSource(cfg config.Config) planner.PlanSource {
	if cfg.Planner.Source == config.PlannerSourceGenerative {
		if cfg.LLM.APIKey != "" {
			logger.Info("Using generative plan source", zap.String("model", cfg.LLM.Model))
			client := planner.NewGeminiClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)
			return planner.NewGenerativePlanner(client)
		}
		logger.Warn("Generative plan source requested without LLM_API_KEY, falling back to algorithmic")
	}
	return planner.NewAlgorithmicPlanner(planner.DefaultCatalog(), planner.SeededRandFactory(cfg.Planner.Seed))
}
