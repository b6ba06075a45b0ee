package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leadpilot/leadpilot/internal/infra/http/middleware"
	"github.com/leadpilot/leadpilot/internal/usecase"
)

type LeadHandler struct {
	CaptureLead *usecase.CaptureLeadUseCase
	UpdateLead  *usecase.UpdateLeadUseCase
}

func NewLeadHandler(captureLead *usecase.CaptureLeadUseCase, updateLead *usecase.UpdateLeadUseCase) *LeadHandler {
	return &LeadHandler{CaptureLead: captureLead, UpdateLead: updateLead}
}

// POST /api/leads
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCaptureInput(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.CaptureLead.Execute(r.Context(), input)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(input.Source)
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": out.ID})
}

// The quote pages submit plain HTML forms; API callers and webhooks send
// JSON. Both land on the same endpoint.
func decodeCaptureInput(r *http.Request) (usecase.CaptureLeadInput, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data") {
		var err error
		if strings.HasPrefix(ct, "multipart/form-data") {
			err = r.ParseMultipartForm(1 << 20)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return usecase.CaptureLeadInput{}, err
		}
		return usecase.CaptureLeadInput{
			CapturePage: r.PostFormValue("capture_page"),
			Name:        r.PostFormValue("name"),
			Phone:       r.PostFormValue("phone"),
			Email:       r.PostFormValue("email"),
			Address:     r.PostFormValue("address"),
			City:        r.PostFormValue("city"),
			PostalCode:  r.PostFormValue("postal_code"),
			Service:     r.PostFormValue("service"),
			Message:     r.PostFormValue("message"),
			Source:      r.PostFormValue("source"),
			UTMSource:   r.PostFormValue("utm_source"),
			UTMMedium:   r.PostFormValue("utm_medium"),
			UTMCampaign: r.PostFormValue("utm_campaign"),
		}, nil
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return usecase.CaptureLeadInput{}, err
	}
	return input, nil
}

// PATCH /api/leads/{id}
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.UpdateLead.Execute(r.Context(), id, input); err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
