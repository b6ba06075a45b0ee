package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadpilot/leadpilot/internal/usecase"
)

type SubscribeHandler struct {
	Subscribe *usecase.SubscribeUseCase
}

func NewSubscribeHandler(subscribe *usecase.SubscribeUseCase) *SubscribeHandler {
	return &SubscribeHandler{Subscribe: subscribe}
}

// POST /api/subscribe
func (h *SubscribeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubscribeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.Subscribe.Execute(r.Context(), input); err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
