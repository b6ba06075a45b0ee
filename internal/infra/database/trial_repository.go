package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/leadpilot/leadpilot/internal/entity"
)

const uniqueViolation = "23505"

type TrialRepository struct {
	DB *sql.DB
}

func NewTrialRepository(db *sql.DB) *TrialRepository {
	return &TrialRepository{DB: db}
}

func (r *TrialRepository) Create(ctx context.Context, t *entity.TrialSignup) error {
	query := `
		INSERT INTO trial_signups (
			id, first_name, last_name, business_name, email, phone,
			industry, city, source, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.FirstName, t.LastName, t.BusinessName, t.Email, t.Phone,
		t.Industry, t.City, t.Source, t.Status, t.CreatedAt, t.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("trial insert failed: %v", err)
		return err
	}

	return nil
}

func (r *TrialRepository) List(ctx context.Context) ([]*entity.TrialSignup, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, first_name, last_name, business_name, email, phone,
		       industry, city, source, status, notes, assigned_to, follow_up_at,
		       created_at, updated_at
		FROM trial_signups ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.TrialSignup{}
	for rows.Next() {
		var t entity.TrialSignup
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.BusinessName,
			&t.Email, &t.Phone, &t.Industry, &t.City, &t.Source, &t.Status,
			&t.Notes, &t.AssignedTo, &t.FollowUpAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *TrialRepository) MarkConverted(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE trial_signups SET status = $1, updated_at = NOW() WHERE id = $2`,
		entity.TrialStatusConverted, id)
	return err
}

func (r *TrialRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM trial_signups`).Scan(&n)
	return n, err
}

// CountActive counts trials still worth chasing: status "new" or "active".
func (r *TrialRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM trial_signups WHERE status IN ('new', 'active')`).Scan(&n)
	return n, err
}
