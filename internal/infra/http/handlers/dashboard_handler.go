package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leadpilot/leadpilot/internal/usecase"
)

type DashboardHandler struct {
	Dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// GET /api/dashboard/{token}
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	out, err := h.Dashboard.Execute(r.Context(), token)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, out)
}
