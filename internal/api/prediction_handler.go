package api

import (
	"alcyxob/fitness-planner/internal/prediction"
	"alcyxob/fitness-planner/internal/service"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictionService service.PredictionService
}

func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// SuccessRequest carries adherence percentages in [0,100]. Missing diet and
// logging values fall back to the engine defaults.
type SuccessRequest struct {
	ExerciseAdherence  *float64 `json:"exercise_adherence" binding:"required,gte=0,lte=100"`
	DietAdherence      *float64 `json:"diet_adherence" binding:"omitempty,gte=0,lte=100"`
	LoggingConsistency *float64 `json:"logging_consistency" binding:"omitempty,gte=0,lte=100"`
}

// percentQuery parses an optional percentage query parameter.
func percentQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 100 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("%s must be a number between 0 and 100", name))
		return nil, false
	}
	return &v, true
}

// WeightPrediction godoc
// @Summary Forecast weight from the logged history
// @Tags Predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.WeightPredictionResult
// @Failure 404 {object} gin.H "User not found"
// @Router /predictions/weight [get]
func (h *PredictionHandler) WeightPrediction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.predictionService.WeightPrediction(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CaloriePrediction godoc
// @Summary Adaptive calorie recommendation
// @Tags Predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CaloriePredictionResult
// @Failure 409 {object} gin.H "Profile not filled in yet"
// @Router /predictions/calories [get]
func (h *PredictionHandler) CaloriePrediction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.predictionService.CaloriePrediction(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Comprehensive godoc
// @Summary Every prediction with a success estimate
// @Tags Predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ComprehensiveResult
// @Failure 409 {object} gin.H "Profile not filled in yet"
// @Router /predictions/comprehensive [get]
func (h *PredictionHandler) Comprehensive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.predictionService.Comprehensive(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Adherence godoc
// @Summary Exercise adherence, plateau risk and success estimate
// @Tags Predictions
// @Produce json
// @Security BearerAuth
// @Param diet query number false "Diet adherence percentage"
// @Param logging query number false "Logging consistency percentage"
// @Success 200 {object} prediction.AdherenceReport
// @Failure 400 {object} gin.H "Invalid percentage"
// @Router /predictions/adherence [get]
func (h *PredictionHandler) Adherence(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	diet, ok := percentQuery(c, "diet")
	if !ok {
		return
	}
	logging, ok := percentQuery(c, "logging")
	if !ok {
		return
	}
	report, err := h.predictionService.Adherence(c.Request.Context(), userID, diet, logging)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Success godoc
// @Summary Success probability from supplied adherence
// @Tags Predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adherence body SuccessRequest true "Adherence percentages"
// @Success 200 {object} prediction.SuccessPrediction
// @Failure 400 {object} gin.H "Invalid input"
// @Router /predictions/success [post]
func (h *PredictionHandler) Success(c *gin.Context) {
	var req SuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	result := h.predictionService.Success(prediction.Adherence{
		ExerciseAdherence:  *req.ExerciseAdherence,
		DietAdherence:      req.DietAdherence,
		LoggingConsistency: req.LoggingConsistency,
	})
	c.JSON(http.StatusOK, result)
}

// Recommendations godoc
// @Summary Rule-based recommendations from recent logs
// @Tags Predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} prediction.Recommendation
// @Failure 404 {object} gin.H "User not found"
// @Router /recommendations [get]
func (h *PredictionHandler) Recommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recs, err := h.predictionService.Recommendations(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
