package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ClientStatusActive  = "active"
	ClientStatusTrial   = "trial"
	ClientStatusChurned = "churned"
)

type Client struct {
	ID             string    `json:"id"`
	TrialID        string    `json:"trial_id,omitempty"`
	BusinessName   string    `json:"business_name"`
	ContactName    string    `json:"contact_name,omitempty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Industry       string    `json:"industry,omitempty"`
	City           string    `json:"city,omitempty"`
	ServiceArea    string    `json:"service_area,omitempty"`
	Plan           string    `json:"plan,omitempty"`
	PlanPrice      float64   `json:"plan_price"`
	Status         string    `json:"status"`
	DashboardToken string    `json:"dashboard_token"`
	WhopMembership string    `json:"whop_membership_id,omitempty"`
	WhopUserID     string    `json:"whop_user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewClient(businessName, contactName, email string) (*Client, error) {
	c := &Client{
		ID:             uuid.New().String(),
		BusinessName:   strings.TrimSpace(businessName),
		ContactName:    strings.TrimSpace(contactName),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		Status:         ClientStatusTrial,
		DashboardToken: NewDashboardToken(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Validate() error {
	if c.BusinessName == "" {
		return errors.New("business_name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// NewDashboardToken yields a URL-safe token short enough for a shareable link.
func NewDashboardToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
}

type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *Client) error
	FindByToken(ctx context.Context, token string) (*Client, error)
	FindByEmail(ctx context.Context, email string) (*Client, error)
	FindByID(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	UpdateBilling(ctx context.Context, id, status, membershipID, userID string) error
	Count(ctx context.Context) (int, error)
}
