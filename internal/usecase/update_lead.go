package usecase

import (
	"context"
	"time"

	"github.com/leadpilot/leadpilot/internal/entity"
)

// UpdateLeadInput is sparse: nil fields are left untouched in the store.
type UpdateLeadInput struct {
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
	JobValue    *float64   `json:"job_value"`
	ContactedAt *time.Time `json:"contacted_at"`
	BookedAt    *time.Time `json:"booked_at"`
}

type UpdateLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewUpdateLeadUseCase(leads entity.LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) error {
	update := entity.LeadUpdate{
		Status:      input.Status,
		Notes:       input.Notes,
		JobValue:    input.JobValue,
		ContactedAt: input.ContactedAt,
		BookedAt:    input.BookedAt,
	}
	if update.Empty() {
		return ValidationError{"update", "no fields to update"}
	}

	// The activity captures only what this call set, not the full row.
	details := map[string]any{}
	if input.Status != nil {
		details["status"] = *input.Status
	}
	if input.Notes != nil {
		details["notes"] = *input.Notes
	}
	if input.JobValue != nil {
		details["job_value"] = *input.JobValue
	}
	if input.ContactedAt != nil {
		details["contacted_at"] = input.ContactedAt.Format(time.RFC3339)
	}
	if input.BookedAt != nil {
		details["booked_at"] = input.BookedAt.Format(time.RFC3339)
	}

	activity := entity.NewLeadActivity(id, entity.ActivityActionStatusUpdated, details)

	return uc.Leads.Update(ctx, id, update, activity)
}
