package controllers

import (
	"encoding/json"
	"net/http"

	"frontpage/app/middleware"
	"frontpage/app/services"

	"go.uber.org/zap"
)

// AuthController handles sign-up, log-in and profile requests
type AuthController struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp registers a new user
func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	if _, err := ac.authService.SignUp(req.Username, req.Password); err != nil {
		sendServiceError(w, ac.logger, err, "User not found")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]string{"message": "Successfully signed up user"})
}

// LogIn verifies credentials and returns an access token
func (ac *AuthController) LogIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	token, userID, err := ac.authService.LogIn(req.Username, req.Password)
	if err != nil {
		sendServiceError(w, ac.logger, err, "User not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"accessToken": token,
		"userId":      userID,
	})
}

// Profile returns the authenticated user's account
func (ac *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	user, err := ac.authService.Profile(userID)
	if err != nil {
		sendServiceError(w, ac.logger, err, "User not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"id":       user.ID,
		"username": user.Username,
	})
}
