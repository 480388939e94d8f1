package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tmohagan/portfolio-api/internal/apperrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError maps the sentinel taxonomy onto status codes in one place.
// Anything outside the taxonomy is an upstream failure: logged in full,
// surfaced as a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrWrongCredentials):
		writeError(w, "wrong credentials", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrConflict):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidToken):
		writeError(w, "invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrForbidden):
		writeError(w, "you are not the author", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(w, "not found", http.StatusNotFound)
	default:
		log.Printf("internal error: %v", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}
