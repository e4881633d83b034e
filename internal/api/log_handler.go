package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LogHandler struct {
	progressService service.ProgressService
}

func NewLogHandler(progressService service.ProgressService) *LogHandler {
	return &LogHandler{progressService: progressService}
}

// --- Request Structs ---
// Date is optional on every log request and defaults to now.

type LogWeightRequest struct {
	Weight float64    `json:"weight" binding:"required,gt=0"`
	Notes  string     `json:"notes"`
	Date   *time.Time `json:"date"`
}

type LogHydrationRequest struct {
	Glasses int        `json:"glasses" binding:"required,gt=0"`
	Date    *time.Time `json:"date"`
}

type LogCaloriesRequest struct {
	Calories    int        `json:"calories" binding:"gte=0"`
	MealType    string     `json:"meal_type" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type LogExerciseRequest struct {
	ExerciseName   string     `json:"exercise_name" binding:"required"`
	Duration       int        `json:"duration_minutes" binding:"gte=0"`
	CaloriesBurned *int       `json:"calories_burned"`
	Date           *time.Time `json:"date"`
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// daysQuery parses ?days=, returning 0 (the service default) when absent.
func daysQuery(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		abortWithError(c, http.StatusBadRequest, "days must be a positive integer")
		return 0, false
	}
	return days, true
}

// bindLog resolves the caller and binds the JSON body into req.
func bindLog(c *gin.Context, req interface{}) (primitive.ObjectID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return userID, false
	}
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return userID, false
	}
	return userID, true
}

// --- Logging ---

// LogWeight godoc
// @Summary Log a weigh-in
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body LogWeightRequest true "Weight in kg"
// @Success 201 {object} domain.WeightEntry
// @Failure 400 {object} gin.H "Invalid input"
// @Router /logs/weight [post]
func (h *LogHandler) LogWeight(c *gin.Context) {
	var req LogWeightRequest
	userID, ok := bindLog(c, &req)
	if !ok {
		return
	}
	entry, err := h.progressService.LogWeight(c.Request.Context(), userID, domain.WeightEntry{
		WeightKg: req.Weight,
		Notes:    req.Notes,
		Date:     dateOrZero(req.Date),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// LogHydration godoc
// @Summary Log glasses of water
// @Description Glasses logged on a day that already has an entry are added to it.
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body LogHydrationRequest true "Glasses of 250 ml"
// @Success 201 {object} domain.HydrationEntry
// @Failure 400 {object} gin.H "Invalid input"
// @Router /logs/hydration [post]
func (h *LogHandler) LogHydration(c *gin.Context) {
	var req LogHydrationRequest
	userID, ok := bindLog(c, &req)
	if !ok {
		return
	}
	entry, err := h.progressService.LogHydration(c.Request.Context(), userID, dateOrZero(req.Date), req.Glasses)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// LogCalories godoc
// @Summary Log a meal's calories
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body LogCaloriesRequest true "Calorie entry"
// @Success 201 {object} domain.CalorieEntry
// @Failure 400 {object} gin.H "Invalid input"
// @Router /logs/calories [post]
func (h *LogHandler) LogCalories(c *gin.Context) {
	var req LogCaloriesRequest
	userID, ok := bindLog(c, &req)
	if !ok {
		return
	}
	entry, err := h.progressService.LogCalories(c.Request.Context(), userID, domain.CalorieEntry{
		Calories:    req.Calories,
		MealType:    req.MealType,
		Description: req.Description,
		Date:        dateOrZero(req.Date),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// LogExercise godoc
// @Summary Log an exercise session
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body LogExerciseRequest true "Exercise entry"
// @Success 201 {object} domain.ExerciseEntry
// @Failure 400 {object} gin.H "Invalid input"
// @Router /logs/exercise [post]
func (h *LogHandler) LogExercise(c *gin.Context) {
	var req LogExerciseRequest
	userID, ok := bindLog(c, &req)
	if !ok {
		return
	}
	entry, err := h.progressService.LogExercise(c.Request.Context(), userID, domain.ExerciseEntry{
		Name:           req.ExerciseName,
		DurationMin:    req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		Date:           dateOrZero(req.Date),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// --- Histories ---

// WeightHistory godoc
// @Summary List weigh-ins
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-back window in days (default 30)"
// @Success 200 {array} domain.WeightEntry
// @Router /logs/weight [get]
func (h *LogHandler) WeightHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	entries, err := h.progressService.WeightHistory(c.Request.Context(), userID, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// HydrationHistory godoc
// @Summary List daily water intake
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-back window in days (default 7)"
// @Success 200 {array} domain.HydrationEntry
// @Router /logs/hydration [get]
func (h *LogHandler) HydrationHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	entries, err := h.progressService.HydrationHistory(c.Request.Context(), userID, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CalorieHistory godoc
// @Summary List calorie entries
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-back window in days (default 7)"
// @Success 200 {array} domain.CalorieEntry
// @Router /logs/calories [get]
func (h *LogHandler) CalorieHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	entries, err := h.progressService.CalorieHistory(c.Request.Context(), userID, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ExerciseHistory godoc
// @Summary List exercise sessions
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-back window in days (default 7)"
// @Success 200 {array} domain.ExerciseEntry
// @Router /logs/exercise [get]
func (h *LogHandler) ExerciseHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	entries, err := h.progressService.ExerciseHistory(c.Request.Context(), userID, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Progress godoc
// @Summary Progress dashboard
// @Description Current weight, change since the first weigh-in, today's totals and recent histories.
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProgressStats
// @Router /progress [get]
func (h *LogHandler) Progress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stats, err := h.progressService.Progress(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
