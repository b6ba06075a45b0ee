package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PageStatusActive = "active"
	PageStatusPaused = "paused"
)

// CapturePage is a landing page bound to one client. The slug doubles as the
// public URL key under /quote/.
type CapturePage struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	City        string    `json:"city,omitempty"`
	Status      string    `json:"status"`
	Views       int       `json:"views"`
	Submissions int       `json:"submissions"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCapturePage(clientID, slug, title, industry, city string) (*CapturePage, error) {
	p := &CapturePage{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Slug:      strings.ToLower(strings.TrimSpace(slug)),
		Title:     title,
		Industry:  strings.ToLower(industry),
		City:      strings.ToLower(city),
		Status:    PageStatusActive,
		CreatedAt: time.Now(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *CapturePage) Validate() error {
	if p.ClientID == "" {
		return errors.New("client_id is required")
	}
	if p.Slug == "" {
		return errors.New("slug is required")
	}
	return nil
}

type CapturePageRepositoryInterface interface {
	// Create returns ErrSlugAlreadyExists on a slug collision.
	Create(ctx context.Context, p *CapturePage) error
	FindBySlug(ctx context.Context, slug string) (*CapturePage, error)
	FindByIndustryCity(ctx context.Context, industry, city string) (*CapturePage, error)
	IncrementViews(ctx context.Context, slug string) error
}
