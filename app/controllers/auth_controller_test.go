package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontpage/app/repositories/mock"
	"frontpage/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthControllerFixture() (*mux.Router, *services.AuthService) {
	userRepo := mock.NewUserRepository()
	authService := services.NewAuthService(userRepo, "test-secret", time.Hour, bcrypt.MinCost)
	ac := NewAuthController(authService, zap.NewNop())

	router := mux.NewRouter()
	router.HandleFunc("/auth/sign-up", ac.SignUp).Methods("POST")
	router.HandleFunc("/auth/log-in", ac.LogIn).Methods("POST")
	router.HandleFunc("/profile", ac.Profile).Methods("GET")

	return router, authService
}

func TestAuthSignUp(t *testing.T) {
	router, _ := newAuthControllerFixture()

	req := httptest.NewRequest("POST", "/auth/sign-up", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Successfully signed up user", body["message"])
}

func TestAuthSignUpValidation(t *testing.T) {
	router, _ := newAuthControllerFixture()

	// take the username first
	req := httptest.NewRequest("POST", "/auth/sign-up", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	require.Equal(t, http.StatusCreated, doRequest(router, req).Code)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "username taken", body: `{"username":"alice","password":"other"}`, want: "Username taken"},
		{name: "missing username", body: `{"password":"hunter2"}`, want: ""},
		{name: "missing password", body: `{"username":"bob"}`, want: ""},
		{name: "malformed body", body: `{"username":`, want: "Missing username or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/sign-up", strings.NewReader(tt.body))
			rec := doRequest(router, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			if tt.want != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.want, body["error"])
			}
		})
	}
}

func TestAuthLogIn(t *testing.T) {
	router, authService := newAuthControllerFixture()

	user, err := authService.SignUp("alice", "hunter2")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/auth/log-in", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, user.ID, body["userId"])
	assert.NotEmpty(t, body["accessToken"])

	verified, err := authService.VerifyToken(body["accessToken"])
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified)
}

func TestAuthLogInWrongCredentials(t *testing.T) {
	router, authService := newAuthControllerFixture()

	_, err := authService.SignUp("alice", "hunter2")
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{name: "wrong password", body: `{"username":"alice","password":"nope"}`},
		{name: "unknown user", body: `{"username":"mallory","password":"hunter2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/log-in", strings.NewReader(tt.body))
			rec := doRequest(router, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "wrong username or password", body["error"])
		})
	}
}

func TestAuthProfile(t *testing.T) {
	router, authService := newAuthControllerFixture()

	user, err := authService.SignUp("alice", "hunter2")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/profile", nil)
	rec := doRequest(router, asUser(req, user.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, user.ID, body["id"])
	assert.Equal(t, "alice", body["username"])
}

func TestAuthProfileUnauthenticated(t *testing.T) {
	router, _ := newAuthControllerFixture()

	rec := doRequest(router, httptest.NewRequest("GET", "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthProfileMissingUser(t *testing.T) {
	router, _ := newAuthControllerFixture()

	req := httptest.NewRequest("GET", "/profile", nil)
	rec := doRequest(router, asUser(req, uuid.NewString()))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
