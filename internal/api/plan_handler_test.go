package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGeneratePlanFromStoredProfile(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "planner@example.com")

	w := s.do(t, http.MethodPost, "/api/v1/plans", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "profile required")

	s.withProfile(t, token)
	w = s.do(t, http.MethodPost, "/api/v1/plans", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var plan domain.Plan
	decode(t, w, &plan)
	assert.False(t, plan.ID.IsZero())
	assert.Equal(t, 1508, plan.DailyCalories)
	assert.Equal(t, domain.SourceAlgorithmic, plan.Plan.Source)
	assert.True(t, plan.Plan.MealPlan.Complete())
	assert.NotEmpty(t, plan.Plan.Exercises)
	for _, item := range plan.Plan.GroceryList {
		name := strings.ToLower(item)
		assert.NotContains(t, name, "peanut")
		assert.NotContains(t, name, "almond")
		assert.NotContains(t, name, "walnut")
	}

	w = s.do(t, http.MethodGet, "/api/v1/plans/"+plan.ID.Hex(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.Plan
	decode(t, w, &fetched)
	assert.Equal(t, plan.ID, fetched.ID)
}

func TestGeneratePlanWithProfileOverride(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "override@example.com")

	req := testProfileRequest()
	req.HealthGoal = "muscle_gain"
	w := s.do(t, http.MethodPost, "/api/v1/plans", token, gin.H{"profile": req})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var plan domain.Plan
	decode(t, w, &plan)
	assert.Equal(t, 2308, plan.DailyCalories)

	// The override is stored as the user's profile.
	w = s.do(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"health_goal":"muscle_gain"`)
}

func TestListPlansNewestFirst(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "history@example.com")
	s.withProfile(t, token)

	for i := 0; i < 3; i++ {
		w := s.do(t, http.MethodPost, "/api/v1/plans", token, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/v1/plans?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []domain.Plan
	decode(t, w, &plans)
	require.Len(t, plans, 2)
	assert.False(t, plans[0].CreatedAt.Before(plans[1].CreatedAt))

	w = s.do(t, http.MethodGet, "/api/v1/plans?limit=zero", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlansArePrivate(t *testing.T) {
	s := newTestServer(t)
	owner := s.signUp(t, "owner@example.com")
	other := s.signUp(t, "other@example.com")
	s.withProfile(t, owner)

	w := s.do(t, http.MethodPost, "/api/v1/plans", owner, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var plan domain.Plan
	decode(t, w, &plan)

	w = s.do(t, http.MethodGet, "/api/v1/plans/"+plan.ID.Hex(), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/plans/not-an-id", owner, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/plans/"+primitive.NewObjectID().Hex(), owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportWithoutStorage(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "export@example.com")
	s.withProfile(t, token)

	w := s.do(t, http.MethodPost, "/api/v1/plans", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var plan domain.Plan
	decode(t, w, &plan)

	w = s.do(t, http.MethodPost, "/api/v1/plans/"+plan.ID.Hex()+"/export", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
