package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/leadpilot/leadpilot/internal/entity"
)

// Activities are written inside the lead repository's transactions; this
// repository only reads them back.
type LeadActivityRepository struct {
	DB *sql.DB
}

func NewLeadActivityRepository(db *sql.DB) *LeadActivityRepository {
	return &LeadActivityRepository{DB: db}
}

func (r *LeadActivityRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.LeadActivity, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, lead_id, action, details, actor, created_at
		FROM lead_activities WHERE lead_id = $1 ORDER BY created_at ASC`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.LeadActivity{}
	for rows.Next() {
		var a entity.LeadActivity
		var details []byte
		if err := rows.Scan(&a.ID, &a.LeadID, &a.Action, &details, &a.Actor, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &a.Details); err != nil {
				return nil, err
			}
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
