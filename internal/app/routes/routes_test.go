package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/registra/internal/bootstrap"
	"github.com/campushub/registra/internal/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// No config file: defaults select the in-memory store, which the
	// bootstrap seeds with the demo dataset.
	cfg, err := config.LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)

	deps, err := bootstrap.BuildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(deps.Store.Close)

	return deps.Router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var env envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	}
	return recorder, env
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var tokens struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	return tokens.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder, _ := doRequest(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestStudentListIsPublic(t *testing.T) {
	router := newTestRouter(t)

	recorder, env := doRequest(t, router, http.MethodGet, "/api/v1/students", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var students []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &students))
	assert.Len(t, students, 3)
}

func TestStudentMutationRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/students", "", gin.H{
		"studentCode": "STU009",
		"fullName":    "Nobody",
		"email":       "nobody@university.edu",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.NotNil(t, env.Error)
}

func TestStudentMutationForbiddenForStudents(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "student", "password")

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/students", token, gin.H{
		"studentCode": "STU009",
		"fullName":    "Nobody",
		"email":       "nobody@university.edu",
	})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_008", env.Error.Code)
}

func TestEnrollmentFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin", "password")

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/courses/1/enrollments", token, gin.H{
		"studentId": 3,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var result struct {
		Success     bool   `json:"success"`
		Outcome     string `json:"outcome"`
		ActiveCount int    `json:"activeCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "ENROLLED", result.Outcome)
	assert.Equal(t, 3, result.ActiveCount)

	// Enrolling the same student again is rejected as a business outcome,
	// still HTTP 200.
	recorder, env = doRequest(t, router, http.MethodPost, "/api/v1/courses/1/enrollments", token, gin.H{
		"studentId": 3,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Success)
	assert.Equal(t, "ALREADY_ENROLLED", result.Outcome)
}

func TestEnrollmentUnknownCourse(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin", "password")

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/courses/999/enrollments", token, gin.H{
		"studentId": 1,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestSelfEnrollmentAlreadyEnrolled(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "student", "password")

	// The demo student account is linked to STU001, already on course 1.
	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/courses/1/enrollments/self", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result struct {
		Success bool   `json:"success"`
		Outcome string `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Success)
	assert.Equal(t, "ALREADY_ENROLLED", result.Outcome)
}

func TestAuthMe(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "student", "password")

	recorder, env := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var account struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "student", account.Username)
	assert.Equal(t, "STUDENT", account.Role)
}

func TestDashboardRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	recorder, _ := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	recorder, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "newuser",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Duplicate registration conflicts, case-insensitively.
	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "NEWUSER",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RES_002", env.Error.Code)

	login(t, router, "newuser", "secret123")
}

func TestLogoutRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "student", "password")

	recorder, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Tokens are stateless; the access token stays valid until it expires.
	recorder, _ = doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCourseDetailsShowsCallerEnrollment(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "student", "password")

	recorder, env := doRequest(t, router, http.MethodGet, "/api/v1/courses/1", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var details struct {
		CallerEnrolled   bool `json:"callerEnrolled"`
		EnrolledStudents []struct {
			StudentCode string `json:"studentCode"`
		} `json:"enrolledStudents"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &details))
	assert.True(t, details.CallerEnrolled)
	assert.Len(t, details.EnrolledStudents, 2)
}
