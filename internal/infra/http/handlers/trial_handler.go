package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadpilot/leadpilot/internal/usecase"
)

type TrialHandler struct {
	TrialSignup *usecase.TrialSignupUseCase
}

func NewTrialHandler(trialSignup *usecase.TrialSignupUseCase) *TrialHandler {
	return &TrialHandler{TrialSignup: trialSignup}
}

// POST /api/trial-signup
func (h *TrialHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.TrialSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	out, err := h.TrialSignup.Execute(r.Context(), input)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": out.ID})
}
