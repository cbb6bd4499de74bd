package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"frontpage/app/repositories"
	"frontpage/app/services"

	"go.uber.org/zap"
)

// Display formats for timestamps in responses.
const (
	displayTime     = "2006-01-02 15:04"
	displayTimeFull = "2006-01-02 15:04:05"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps service/repository errors to the response taxonomy.
// notFoundMessage names the entity for 404s; unexpected failures become a
// bare 500 with no detail leaked.
func sendServiceError(w http.ResponseWriter, logger *zap.Logger, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrForbidden):
		sendError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrWrongCredentials):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrUsernameTaken):
		sendError(w, http.StatusBadRequest, "Username taken")
	default:
		logger.Error("request failed", zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Internal server error")
	}
}
