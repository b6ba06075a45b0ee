package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/leadpilot/leadpilot/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, client_id, capture_page, name, phone, email, address, city,
	postal_code, service, message, source, utm_source, utm_medium,
	utm_campaign, status, contacted_at, booked_at, job_value, notes,
	created_at, updated_at`

// Create inserts the lead, bumps the capture page's submission counter and
// appends the "created" activity inside one transaction, so a crash cannot
// leave a lead without its audit row.
func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead, activity *entity.LeadActivity) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO leads (
			id, client_id, capture_page, name, phone, email, address, city,
			postal_code, service, message, source, utm_source, utm_medium,
			utm_campaign, status, job_value, notes, created_at, updated_at
		) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11,
		          $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		l.ID, l.ClientID, l.CapturePage, l.Name, l.Phone, l.Email, l.Address,
		l.City, l.PostalCode, l.Service, l.Message, l.Source, l.UTMSource,
		l.UTMMedium, l.UTMCampaign, l.Status, l.JobValue, l.Notes,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("lead insert failed: %w", err)
	}

	// No matching page means zero rows updated, which is fine.
	if l.CapturePage != "" {
		_, err = tx.ExecContext(ctx,
			`UPDATE capture_pages SET submissions = submissions + 1 WHERE slug = $1`,
			l.CapturePage)
		if err != nil {
			return fmt.Errorf("submission counter update failed: %w", err)
		}
	}

	if activity != nil {
		if err := insertActivity(ctx, tx, activity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var l entity.Lead
	var clientID sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id).Scan(
		&l.ID, &clientID, &l.CapturePage, &l.Name, &l.Phone, &l.Email,
		&l.Address, &l.City, &l.PostalCode, &l.Service, &l.Message, &l.Source,
		&l.UTMSource, &l.UTMMedium, &l.UTMCampaign, &l.Status, &l.ContactedAt,
		&l.BookedAt, &l.JobValue, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	l.ClientID = clientID.String
	return &l, nil
}

func (r *LeadRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Lead, error) {
	return r.List(ctx, entity.LeadFilter{ClientID: clientID})
}

func (r *LeadRepository) List(ctx context.Context, f entity.LeadFilter) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`

	var conds []string
	var args []any
	if f.ClientID != "" {
		args = append(args, f.ClientID)
		conds = append(conds, fmt.Sprintf("client_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		var clientID sql.NullString
		if err := rows.Scan(&l.ID, &clientID, &l.CapturePage, &l.Name, &l.Phone,
			&l.Email, &l.Address, &l.City, &l.PostalCode, &l.Service, &l.Message,
			&l.Source, &l.UTMSource, &l.UTMMedium, &l.UTMCampaign, &l.Status,
			&l.ContactedAt, &l.BookedAt, &l.JobValue, &l.Notes,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		l.ClientID = clientID.String
		out = append(out, &l)
	}
	return out, rows.Err()
}

// Update applies only the fields present in u, always touching updated_at,
// and appends the activity row in the same transaction.
func (r *LeadRepository) Update(ctx context.Context, id string, u entity.LeadUpdate, activity *entity.LeadActivity) error {
	sets := []string{"updated_at = NOW()"}
	var args []any

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.Status != nil {
		add("status", *u.Status)
	}
	if u.Notes != nil {
		add("notes", *u.Notes)
	}
	if u.JobValue != nil {
		add("job_value", *u.JobValue)
	}
	if u.ContactedAt != nil {
		add("contacted_at", *u.ContactedAt)
	}
	if u.BookedAt != nil {
		add("booked_at", *u.BookedAt)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrLeadNotFound
	}

	if activity != nil {
		if err := insertActivity(ctx, tx, activity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

// CountToday counts by UTC calendar day; the store runs in UTC.
func (r *LeadRepository) CountToday(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE created_at::date = CURRENT_DATE`).Scan(&n)
	return n, err
}

func (r *LeadRepository) TotalJobValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(job_value), 0) FROM leads WHERE job_value IS NOT NULL`).Scan(&total)
	return total, err
}

func insertActivity(ctx context.Context, tx *sql.Tx, a *entity.LeadActivity) error {
	var details []byte
	if a.Details != nil {
		b, err := json.Marshal(a.Details)
		if err != nil {
			return fmt.Errorf("activity details marshal failed: %w", err)
		}
		details = b
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO lead_activities (id, lead_id, action, details, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.LeadID, a.Action, details, a.Actor, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("activity insert failed: %w", err)
	}
	return nil
}
