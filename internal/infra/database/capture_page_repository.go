package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/leadpilot/leadpilot/internal/entity"
)

type CapturePageRepository struct {
	DB *sql.DB
}

func NewCapturePageRepository(db *sql.DB) *CapturePageRepository {
	return &CapturePageRepository{DB: db}
}

func (r *CapturePageRepository) Create(ctx context.Context, p *entity.CapturePage) error {
	query := `
		INSERT INTO capture_pages (id, client_id, slug, title, industry, city, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.ClientID, p.Slug, p.Title, p.Industry, p.City, p.Status, p.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrSlugAlreadyExists
		}
		log.Printf("capture page insert failed: %v", err)
		return err
	}

	return nil
}

func (r *CapturePageRepository) FindBySlug(ctx context.Context, slug string) (*entity.CapturePage, error) {
	return r.findOne(ctx,
		`SELECT id, client_id, slug, title, industry, city, status, views, submissions, created_at
		 FROM capture_pages WHERE slug = $1`, slug)
}

func (r *CapturePageRepository) FindByIndustryCity(ctx context.Context, industry, city string) (*entity.CapturePage, error) {
	return r.findOne(ctx,
		`SELECT id, client_id, slug, title, industry, city, status, views, submissions, created_at
		 FROM capture_pages WHERE industry = $1 AND city = $2
		 ORDER BY created_at DESC LIMIT 1`, industry, city)
}

func (r *CapturePageRepository) findOne(ctx context.Context, query string, args ...any) (*entity.CapturePage, error) {
	var p entity.CapturePage
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.ClientID, &p.Slug, &p.Title, &p.Industry, &p.City,
		&p.Status, &p.Views, &p.Submissions, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CapturePageRepository) IncrementViews(ctx context.Context, slug string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE capture_pages SET views = views + 1 WHERE slug = $1`, slug)
	return err
}
