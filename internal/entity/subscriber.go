package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSubscriber normalizes the email before anything else touches it.
func NewSubscriber(email, source string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}

	return &Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		Source:    source,
		Status:    SubscriberStatusActive,
		CreatedAt: time.Now(),
	}, nil
}

type SubscriberRepositoryInterface interface {
	// Upsert inserts the subscriber, ignoring duplicate emails.
	Upsert(ctx context.Context, s *Subscriber) error
	List(ctx context.Context) ([]*Subscriber, error)
	Count(ctx context.Context) (int, error)
}
