package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlanHandler struct {
	planService   service.PlanService
	exportService service.ExportService
}

func NewPlanHandler(planService service.PlanService, exportService service.ExportService) *PlanHandler {
	return &PlanHandler{planService: planService, exportService: exportService}
}

// GeneratePlanRequest optionally overrides the stored profile for one plan.
type GeneratePlanRequest struct {
	Profile *ProfileRequest `json:"profile"`
}

// GeneratePlan godoc
// @Summary Generate a daily meal and exercise plan
// @Description Uses the stored profile unless one is supplied in the body. The plan is stored in the user's history.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GeneratePlanRequest false "Optional profile override"
// @Success 201 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 409 {object} gin.H "Profile not filled in yet"
// @Failure 502 {object} gin.H "Plan generation failed"
// @Router /plans [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req GeneratePlanRequest
	// An empty body means "use the stored profile".
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	var override *domain.UserProfile
	if req.Profile != nil {
		p := req.Profile.ToDomain()
		override = &p
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), userID, override)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListPlans godoc
// @Summary List generated plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of plans"
// @Success 200 {array} domain.Plan
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit := int64(service.DefaultPlanHistory)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary Get one stored plan
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid plan ID"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{planId} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format in URL path.")
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ExportPlan godoc
// @Summary Export a plan as an Excel workbook
// @Description Uploads the workbook to object storage and returns a temporary download URL.
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} service.ExportResult
// @Failure 400 {object} gin.H "Invalid plan ID"
// @Failure 404 {object} gin.H "Plan not found"
// @Failure 503 {object} gin.H "Export storage not configured"
// @Router /plans/{planId}/export [post]
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format in URL path.")
		return
	}

	result, err := h.exportService.ExportPlan(c.Request.Context(), userID, planID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
