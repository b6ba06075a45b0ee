package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TrialStatusNew       = "new"
	TrialStatusActive    = "active"
	TrialStatusConverted = "converted"
)

type TrialSignup struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name,omitempty"`
	BusinessName string    `json:"business_name,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Industry     string    `json:"industry,omitempty"`
	City         string    `json:"city,omitempty"`
	Source       string    `json:"source,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	AssignedTo   string    `json:"assigned_to,omitempty"`
	FollowUpAt   *time.Time `json:"follow_up_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewTrialSignup(firstName, lastName, businessName, email, phone, industry, city, source string) (*TrialSignup, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	t := &TrialSignup{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		BusinessName: strings.TrimSpace(businessName),
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		Industry:     industry,
		City:         city,
		Source:       source,
		Status:       TrialStatusNew,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TrialSignup) Validate() error {
	if t.FirstName == "" {
		return errors.New("first_name is required")
	}
	if t.Email == "" {
		return errors.New("email is required")
	}
	if t.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

type TrialRepositoryInterface interface {
	// Create returns ErrEmailAlreadyExists when the email already has a trial.
	Create(ctx context.Context, t *TrialSignup) error
	List(ctx context.Context) ([]*TrialSignup, error)
	MarkConverted(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}
