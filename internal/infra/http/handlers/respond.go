package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondUsecaseError is the one place usecase errors become HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the detail stays in
// the server log.
func respondUsecaseError(w http.ResponseWriter, err error) {
	var vErr usecase.ValidationError
	if errors.As(err, &vErr) {
		respondError(w, http.StatusBadRequest, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		respondError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, entity.ErrSlugAlreadyExists):
		respondError(w, http.StatusConflict, "slug already in use")
	case errors.Is(err, entity.ErrLeadNotFound):
		respondError(w, http.StatusNotFound, "lead not found")
	case errors.Is(err, entity.ErrClientNotFound):
		respondError(w, http.StatusNotFound, "client not found")
	case errors.Is(err, entity.ErrPageNotFound):
		respondError(w, http.StatusNotFound, "capture page not found")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
