package api

import (
	"alcyxob/fitness-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles what the HTTP layer depends on.
type Services struct {
	Auth       service.AuthService
	Plans      service.PlanService
	Progress   service.ProgressService
	Prediction service.PredictionService
	Export     service.ExportService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, services Services) {
	authHandler := NewAuthHandler(services.Auth)
	profileHandler := NewProfileHandler(services.Plans)
	planHandler := NewPlanHandler(services.Plans, services.Export)
	logHandler := NewLogHandler(services.Progress)
	predictionHandler := NewPredictionHandler(services.Prediction)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// --- Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("", planHandler.GeneratePlan)
			planGroup.GET("", planHandler.ListPlans)
			planGroup.GET("/:planId", planHandler.GetPlan)
			planGroup.POST("/:planId/export", planHandler.ExportPlan)
		}

		// --- Progress logs ---
		logGroup := protected.Group("/logs")
		{
			logGroup.POST("/weight", logHandler.LogWeight)
			logGroup.GET("/weight", logHandler.WeightHistory)
			logGroup.POST("/hydration", logHandler.LogHydration)
			logGroup.GET("/hydration", logHandler.HydrationHistory)
			logGroup.POST("/calories", logHandler.LogCalories)
			logGroup.GET("/calories", logHandler.CalorieHistory)
			logGroup.POST("/exercise", logHandler.LogExercise)
			logGroup.GET("/exercise", logHandler.ExerciseHistory)
		}
		protected.GET("/progress", logHandler.Progress)

		// --- Predictions ---
		predictionGroup := protected.Group("/predictions")
		{
			predictionGroup.GET("/weight", predictionHandler.WeightPrediction)
			predictionGroup.GET("/calories", predictionHandler.CaloriePrediction)
			predictionGroup.GET("/comprehensive", predictionHandler.Comprehensive)
			predictionGroup.GET("/adherence", predictionHandler.Adherence)
			predictionGroup.POST("/success", predictionHandler.Success)
		}
		protected.GET("/recommendations", predictionHandler.Recommendations)
	}
}
