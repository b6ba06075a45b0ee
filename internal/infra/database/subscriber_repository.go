package database

import (
	"context"
	"database/sql"

	"github.com/leadpilot/leadpilot/internal/entity"
)

type SubscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

// Upsert makes subscribe idempotent: a repeat email is a no-op, not an error.
func (r *SubscriberRepository) Upsert(ctx context.Context, s *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, source, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`

	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Email, s.Source, s.Status, s.CreatedAt)
	return err
}

func (r *SubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, email, source, status, created_at
		FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Subscriber{}
	for rows.Next() {
		var s entity.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Source, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SubscriberRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n)
	return n, err
}
