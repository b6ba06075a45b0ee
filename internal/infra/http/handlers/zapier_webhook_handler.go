package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/leadpilot/leadpilot/internal/infra/http/middleware"
	"github.com/leadpilot/leadpilot/internal/usecase"
)

// ZapierWebhookHandler accepts generic automation pushes. A "new_lead" event
// is dispatched to the capture-lead usecase in process; no loopback HTTP
// call is involved.
type ZapierWebhookHandler struct {
	CaptureLead *usecase.CaptureLeadUseCase
}

func NewZapierWebhookHandler(captureLead *usecase.CaptureLeadUseCase) *ZapierWebhookHandler {
	return &ZapierWebhookHandler{CaptureLead: captureLead}
}

type zapierPayload struct {
	Event string                   `json:"event"`
	Lead  usecase.CaptureLeadInput `json:"lead"`
}

// POST /api/webhooks/zapier
func (h *ZapierWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload zapierPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	middleware.RecordWebhookEvent("zapier", payload.Event)

	if payload.Event == "new_lead" {
		if payload.Lead.Source == "" {
			payload.Lead.Source = "zapier"
		}
		if _, err := h.CaptureLead.Execute(r.Context(), payload.Lead); err != nil {
			// The sender retries on non-2xx forever; log and acknowledge.
			log.Printf("zapier lead dispatch failed: %v", err)
		}
	} else {
		log.Printf("zapier webhook ignored event %q", payload.Event)
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "received": true})
}
