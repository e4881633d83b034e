package api

import (
	"alcyxob/fitness-planner/internal/planner"
	"alcyxob/fitness-planner/internal/prediction"
	"alcyxob/fitness-planner/internal/repository/memory"
	"alcyxob/fitness-planner/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

var testNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

type testServer struct {
	router *gin.Engine
	store  *memory.Store
}

// newTestServer wires the real services over an in-memory store. Exports
// are disabled since no file storage is configured.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	clock := func() time.Time { return testNow }
	source := planner.NewAlgorithmicPlanner(planner.DefaultCatalog(), planner.SeededRandFactory(7))

	planService := service.NewPlanService(store.Users(), store.Plans(), source)
	progressService := service.NewProgressService(service.LogRepositories{
		Weights:   store.Weights(),
		Calories:  store.Calories(),
		Exercises: store.Exercises(),
		Hydration: store.Hydration(),
	}, clock)
	engine := prediction.NewEngine(prediction.WithClock(clock))

	router := gin.New()
	SetupRoutes(router, testJWTSecret, Services{
		Auth:       service.NewAuthService(store.Users(), testJWTSecret, time.Hour),
		Plans:      planService,
		Progress:   progressService,
		Prediction: service.NewPredictionService(store.Users(), progressService, engine),
		Export:     service.NewExportService(planService, store.Plans(), nil, 0),
	})
	return &testServer{router: router, store: store}
}

// do sends a JSON request, with a bearer token when token is not empty.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signUp registers and logs in a fresh user, returning the token.
func (s *testServer) signUp(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{"name": "Test", "email": email, "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": email, "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// withProfile stores the reference profile: male, 25, 175 cm, 70 kg,
// sedentary, weight loss.
func (s *testServer) withProfile(t *testing.T, token string) {
	t.Helper()
	w := s.do(t, http.MethodPut, "/api/v1/profile", token, testProfileRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func testProfileRequest() ProfileRequest {
	return ProfileRequest{
		Age:             25,
		Gender:          "male",
		Height:          175,
		Weight:          70,
		ActivityLevel:   "sedentary",
		HealthGoal:      "weight_loss",
		FoodPreferences: "no preference",
		Allergies:       "peanuts, shellfish",
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
