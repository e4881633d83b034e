package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	planService service.PlanService
}

func NewProfileHandler(planService service.PlanService) *ProfileHandler {
	return &ProfileHandler{planService: planService}
}

// --- Request Structs ---

// ProfileRequest carries allergies as the comma separated string the
// questionnaire collects.
type ProfileRequest struct {
	Age               int     `json:"age" binding:"required,gt=0"`
	Gender            string  `json:"gender" binding:"required"`
	Height            float64 `json:"height" binding:"required,gt=0"`
	Weight            float64 `json:"weight" binding:"required,gt=0"`
	ActivityLevel     string  `json:"activity_level" binding:"required"`
	HealthGoal        string  `json:"health_goal" binding:"required"`
	FoodPreferences   string  `json:"food_preferences"`
	Allergies         string  `json:"allergies"`
	MedicalConditions string  `json:"medical_conditions"`
}

// ToDomain converts the request into a profile.
func (r ProfileRequest) ToDomain() domain.UserProfile {
	return domain.UserProfile{
		Age:               r.Age,
		Gender:            domain.Gender(r.Gender),
		HeightCm:          r.Height,
		WeightKg:          r.Weight,
		ActivityLevel:     domain.ActivityLevel(r.ActivityLevel),
		HealthGoal:        domain.HealthGoal(r.HealthGoal),
		FoodPreferences:   r.FoodPreferences,
		Allergies:         domain.ParseAllergies(r.Allergies),
		MedicalConditions: r.MedicalConditions,
	}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProfileSummary
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Failure 409 {object} gin.H "Profile not filled in yet"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := h.planService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateProfile godoc
// @Summary Create or replace the current user's profile
// @Description Stores the profile and returns it with the recalculated BMR, daily calories and macros.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} service.ProfileSummary
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	summary, err := h.planService.UpdateProfile(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
