package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/leadpilot/leadpilot/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `
	id, trial_id, business_name, contact_name, email, phone, industry, city,
	service_area, plan, plan_price, status, dashboard_token,
	whop_membership_id, whop_user_id, created_at, updated_at`

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (
			id, trial_id, business_name, contact_name, email, phone, industry,
			city, service_area, plan, plan_price, status, dashboard_token,
			whop_membership_id, whop_user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.TrialID, c.BusinessName, c.ContactName, c.Email, c.Phone,
		c.Industry, c.City, c.ServiceArea, c.Plan, c.PlanPrice, c.Status,
		c.DashboardToken, c.WhopMembership, c.WhopUserID, c.CreatedAt, c.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("client insert failed: %v", err)
		return err
	}

	return nil
}

func (r *ClientRepository) FindByToken(ctx context.Context, token string) (*entity.Client, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE dashboard_token = $1`, token)
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE email = $1`, email)
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

func (r *ClientRepository) findOne(ctx context.Context, query string, arg any) (*entity.Client, error) {
	var c entity.Client
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&c.ID, &c.TrialID, &c.BusinessName, &c.ContactName, &c.Email, &c.Phone,
		&c.Industry, &c.City, &c.ServiceArea, &c.Plan, &c.PlanPrice, &c.Status,
		&c.DashboardToken, &c.WhopMembership, &c.WhopUserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Client{}
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.TrialID, &c.BusinessName, &c.ContactName,
			&c.Email, &c.Phone, &c.Industry, &c.City, &c.ServiceArea, &c.Plan,
			&c.PlanPrice, &c.Status, &c.DashboardToken, &c.WhopMembership,
			&c.WhopUserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// UpdateBilling records webhook-driven state: status plus the billing
// platform's membership/user identifiers. Empty identifiers keep the stored
// values.
func (r *ClientRepository) UpdateBilling(ctx context.Context, id, status, membershipID, userID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE clients SET
			status = $1,
			whop_membership_id = COALESCE(NULLIF($2, ''), whop_membership_id),
			whop_user_id = COALESCE(NULLIF($3, ''), whop_user_id),
			updated_at = NOW()
		WHERE id = $4`,
		status, membershipID, userID, id)
	return err
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n)
	return n, err
}
