package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoundTrip(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "profile@example.com")

	w := s.do(t, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "no profile yet")

	req := testProfileRequest()
	req.Gender = " Male "
	req.HealthGoal = "WEIGHT_LOSS"
	w = s.do(t, http.MethodPut, "/api/v1/profile", token, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary service.ProfileSummary
	decode(t, w, &summary)
	assert.Equal(t, 1673.75, summary.BMR)
	assert.Equal(t, 1508, summary.DailyCalories)
	assert.Equal(t, domain.GenderMale, summary.Profile.Gender)
	assert.Equal(t, domain.GoalWeightLoss, summary.Profile.HealthGoal)
	assert.Equal(t, []string{"peanuts", "shellfish"}, summary.Profile.Allergies)

	w = s.do(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var again service.ProfileSummary
	decode(t, w, &again)
	assert.Equal(t, summary, again)
}

func TestUpdateProfileRejectsInvalidInput(t *testing.T) {
	s := newTestServer(t)
	token := s.signUp(t, "invalid@example.com")

	req := testProfileRequest()
	req.Age = 0
	w := s.do(t, http.MethodPut, "/api/v1/profile", token, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = testProfileRequest()
	req.Age = 150
	w = s.do(t, http.MethodPut, "/api/v1/profile", token, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/v1/profile", "", testProfileRequest())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
