package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"

	"github.com/leadpilot/leadpilot/internal/infra/http/middleware"
)

// FacebookWebhookHandler receives Lead-Ads pushes. Delivery is currently
// acknowledge-and-log only.
type FacebookWebhookHandler struct {
	VerifyToken string
}

func NewFacebookWebhookHandler(verifyToken string) *FacebookWebhookHandler {
	return &FacebookWebhookHandler{VerifyToken: verifyToken}
}

// HandleVerify answers the platform's GET handshake: echo the challenge when
// the mode is "subscribe" and the token matches, otherwise forbidden.
func (h *FacebookWebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && tokenMatches(token, h.VerifyToken) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	http.Error(w, "forbidden", http.StatusForbidden)
}

type leadgenDelivery struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string `json:"field"`
			Value struct {
				LeadgenID   string `json:"leadgen_id"`
				PageID      string `json:"page_id"`
				FormID      string `json:"form_id"`
				CreatedTime int64  `json:"created_time"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// HandleDelivery iterates leadgen changes and acknowledges them.
func (h *FacebookWebhookHandler) HandleDelivery(w http.ResponseWriter, r *http.Request) {
	var delivery leadgenDelivery
	if err := json.NewDecoder(r.Body).Decode(&delivery); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	for _, entry := range delivery.Entry {
		for _, change := range entry.Changes {
			if change.Field != "leadgen" {
				continue
			}
			middleware.RecordWebhookEvent("facebook", change.Field)
			// TODO: fetch the lead's field data from the Graph API
			// (/{leadgen_id}) and push it through CaptureLead.
			log.Printf("facebook leadgen received: leadgen_id=%s page_id=%s form_id=%s",
				change.Value.LeadgenID, change.Value.PageID, change.Value.FormID)
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func tokenMatches(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
