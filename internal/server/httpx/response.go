package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
)

const (
	msgUnauthorized       = "unauthorized"
	msgInvalidCredentials = "invalid username or password"
	msgInternal           = "internal server error"
	msgInvalidBody        = "invalid request body"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service sentinels to status codes and returns the
// code written. Validation messages are meant for the caller; anything
// unrecognised becomes a generic 500.
func writeServiceError(w http.ResponseWriter, err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, err.Error())
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorConflict):
		writeError(w, http.StatusBadRequest, common.ErrorConflict.Error())
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return http.StatusUnauthorized
	default:
		writeError(w, http.StatusInternalServerError, msgInternal)
		return http.StatusInternalServerError
	}
}
