package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/http/middleware"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

// WhopWebhookHandler ingests billing-platform events. The shared secret is
// compared directly against the X-Whop-Signature header; with no secret
// configured the check is skipped.
type WhopWebhookHandler struct {
	Clients       entity.ClientRepositoryInterface
	Queue         queue.EmailQueueInterface
	WebhookSecret string
	NotifyEmail   string
}

func NewWhopWebhookHandler(clients entity.ClientRepositoryInterface, q queue.EmailQueueInterface, webhookSecret, notifyEmail string) *WhopWebhookHandler {
	return &WhopWebhookHandler{
		Clients:       clients,
		Queue:         q,
		WebhookSecret: webhookSecret,
		NotifyEmail:   notifyEmail,
	}
}

type whopEvent struct {
	Action string `json:"action"`
	Data   struct {
		Email        string `json:"email"`
		MembershipID string `json:"membership_id"`
		UserID       string `json:"user_id"`
	} `json:"data"`
}

// POST /api/webhooks/whop
func (h *WhopWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.WebhookSecret != "" {
		sig := r.Header.Get("X-Whop-Signature")
		if subtle.ConstantTimeCompare([]byte(sig), []byte(h.WebhookSecret)) != 1 {
			respondError(w, http.StatusUnauthorized, "invalid signature")
			return
		}
	}

	var event whopEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	middleware.RecordWebhookEvent("whop", event.Action)

	switch event.Action {
	case "payment.succeeded":
		h.setClientBilling(r, event, entity.ClientStatusActive)
		h.notifyOps(r, fmt.Sprintf("Payment succeeded: %s", event.Data.Email),
			fmt.Sprintf("email: %s\nmembership: %s", event.Data.Email, event.Data.MembershipID))

	case "membership.went_valid":
		h.setClientBilling(r, event, entity.ClientStatusActive)

	case "membership.went_invalid":
		h.setClientBilling(r, event, entity.ClientStatusChurned)
		h.notifyOps(r, fmt.Sprintf("Membership churned: %s", event.Data.Email),
			fmt.Sprintf("email: %s\nmembership: %s", event.Data.Email, event.Data.MembershipID))

	case "payment.failed":
		h.notifyOps(r, fmt.Sprintf("Payment failed: %s", event.Data.Email),
			fmt.Sprintf("email: %s\nmembership: %s", event.Data.Email, event.Data.MembershipID))

	default:
		log.Printf("whop webhook: ignoring action %q", event.Action)
	}

	// Every branch acknowledges; the platform should not retry events we
	// chose not to act on.
	respondJSON(w, http.StatusOK, map[string]any{"received": true})
}

// setClientBilling updates the matching client. No match is silent: the
// platform sells to people who never become clients here.
func (h *WhopWebhookHandler) setClientBilling(r *http.Request, event whopEvent, status string) {
	client, err := h.Clients.FindByEmail(r.Context(), event.Data.Email)
	if errors.Is(err, entity.ErrClientNotFound) {
		log.Printf("whop webhook: no client for %s, ignoring", event.Data.Email)
		return
	}
	if err != nil {
		log.Printf("whop webhook: client lookup failed for %s: %v", event.Data.Email, err)
		return
	}

	err = h.Clients.UpdateBilling(r.Context(), client.ID, status,
		event.Data.MembershipID, event.Data.UserID)
	if err != nil {
		log.Printf("whop webhook: billing update failed for %s: %v", client.ID, err)
	}
}

func (h *WhopWebhookHandler) notifyOps(r *http.Request, subject, body string) {
	if h.Queue == nil {
		return
	}
	err := h.Queue.PublishEmail(r.Context(), queue.EmailJob{
		Template: string(mail.TemplateInternalNotification),
		To:       h.NotifyEmail,
		Data:     map[string]string{"subject": subject, "body": body},
	})
	if err != nil {
		log.Printf("warning: failed to enqueue whop notification: %v", err)
	}
}
