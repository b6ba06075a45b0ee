package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActivityActionCreated       = "created"
	ActivityActionStatusUpdated = "status_updated"
)

// LeadActivity is an append-only audit row. Rows are never updated or deleted.
type LeadActivity struct {
	ID        string         `json:"id"`
	LeadID    string         `json:"lead_id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Actor     string         `json:"actor,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewLeadActivity(leadID, action string, details map[string]any) *LeadActivity {
	return &LeadActivity{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}
}

type LeadActivityRepositoryInterface interface {
	ListByLead(ctx context.Context, leadID string) ([]*LeadActivity, error)
}
