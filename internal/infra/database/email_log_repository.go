package database

import (
	"context"
	"database/sql"

	"github.com/leadpilot/leadpilot/internal/entity"
)

type EmailLogRepository struct {
	DB *sql.DB
}

func NewEmailLogRepository(db *sql.DB) *EmailLogRepository {
	return &EmailLogRepository{DB: db}
}

func (r *EmailLogRepository) Append(ctx context.Context, e *entity.EmailLogEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO email_log (id, recipient, subject, template, status, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Recipient, e.Subject, e.Template, e.Status, e.Error, e.CreatedAt)
	return err
}

func (r *EmailLogRepository) List(ctx context.Context, limit int) ([]*entity.EmailLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, recipient, subject, template, status, error, created_at
		FROM email_log ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.EmailLogEntry{}
	for rows.Next() {
		var e entity.EmailLogEntry
		if err := rows.Scan(&e.ID, &e.Recipient, &e.Subject, &e.Template,
			&e.Status, &e.Error, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
