package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusBooked    = "booked"
	LeadStatusNoAnswer  = "no_answer"
)

type Lead struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id,omitempty"` // empty when no capture page matched
	CapturePage string     `json:"capture_page,omitempty"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	PostalCode  string     `json:"postal_code,omitempty"`
	Service     string     `json:"service,omitempty"`
	Message     string     `json:"message,omitempty"`
	Source      string     `json:"source,omitempty"`
	UTMSource   string     `json:"utm_source,omitempty"`
	UTMMedium   string     `json:"utm_medium,omitempty"`
	UTMCampaign string     `json:"utm_campaign,omitempty"`
	Status      string     `json:"status"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	BookedAt    *time.Time `json:"booked_at,omitempty"`
	JobValue    *float64   `json:"job_value,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewLead(name, phone string) (*Lead, error) {
	l := &Lead{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Phone:     strings.TrimSpace(phone),
		Status:    LeadStatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

// LeadUpdate carries only the fields a status-update call supplied.
// Nil pointers mean "leave the stored value alone".
type LeadUpdate struct {
	Status      *string
	Notes       *string
	JobValue    *float64
	ContactedAt *time.Time
	BookedAt    *time.Time
}

// Empty reports whether the update would touch nothing but updated_at.
func (u LeadUpdate) Empty() bool {
	return u.Status == nil && u.Notes == nil && u.JobValue == nil &&
		u.ContactedAt == nil && u.BookedAt == nil
}

// LeadFilter narrows admin lead listings. Zero values mean no filter.
type LeadFilter struct {
	ClientID string
	Status   string
	Limit    int
}

type LeadRepositoryInterface interface {
	// Create inserts the lead, bumps the matched capture page's submission
	// counter and appends the "created" activity in one transaction.
	Create(ctx context.Context, l *Lead, activity *LeadActivity) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	ListByClient(ctx context.Context, clientID string) ([]*Lead, error)
	List(ctx context.Context, f LeadFilter) ([]*Lead, error)
	// Update applies the set fields, touches updated_at and appends the
	// "status_updated" activity. Returns ErrLeadNotFound for unknown ids.
	Update(ctx context.Context, id string, u LeadUpdate, activity *LeadActivity) error
	Count(ctx context.Context) (int, error)
	CountToday(ctx context.Context) (int, error)
	TotalJobValue(ctx context.Context) (float64, error)
}
