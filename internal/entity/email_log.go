package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLogEntry records one outbound send attempt, success or failure.
type EmailLogEntry struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Template  string    `json:"template"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEmailLogEntry(recipient, subject, template, status, errMsg string) *EmailLogEntry {
	return &EmailLogEntry{
		ID:        uuid.New().String(),
		Recipient: recipient,
		Subject:   subject,
		Template:  template,
		Status:    status,
		Error:     errMsg,
		CreatedAt: time.Now(),
	}
}

type EmailLogRepositoryInterface interface {
	Append(ctx context.Context, e *EmailLogEntry) error
	List(ctx context.Context, limit int) ([]*EmailLogEntry, error)
}
