package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/leadpilot/leadpilot/internal/entity"
)

type CreateClientInput struct {
	TrialID      string  `json:"trial_id"`
	BusinessName string  `json:"business_name"`
	ContactName  string  `json:"contact_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Industry     string  `json:"industry"`
	City         string  `json:"city"`
	ServiceArea  string  `json:"service_area"`
	Plan         string  `json:"plan"`
	PlanPrice    float64 `json:"plan_price"`
}

type CreateClientOutput struct {
	ID             string `json:"id"`
	DashboardToken string `json:"dashboardToken"`
	DashboardURL   string `json:"dashboardUrl"`
}

type CreateClientUseCase struct {
	Clients entity.ClientRepositoryInterface
	Trials  entity.TrialRepositoryInterface
	BaseURL string
}

func NewCreateClientUseCase(clients entity.ClientRepositoryInterface, trials entity.TrialRepositoryInterface, baseURL string) *CreateClientUseCase {
	return &CreateClientUseCase{Clients: clients, Trials: trials, BaseURL: baseURL}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	var errs []ValidationError
	errs = requireField(errs, "business_name", input.BusinessName)
	errs = requireField(errs, "email", input.Email)
	if len(errs) == 0 && !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if len(errs) > 0 {
		return nil, errs[0]
	}

	client, err := entity.NewClient(input.BusinessName, input.ContactName, input.Email)
	if err != nil {
		return nil, err
	}
	client.TrialID = input.TrialID
	client.Phone = input.Phone
	client.Industry = input.Industry
	client.City = input.City
	client.ServiceArea = input.ServiceArea
	client.Plan = input.Plan
	client.PlanPrice = input.PlanPrice

	if err := uc.Clients.Create(ctx, client); err != nil {
		return nil, err
	}

	// Best effort: the client row exists either way, the trial just stays
	// unconverted until someone fixes it up.
	if input.TrialID != "" {
		if err := uc.Trials.MarkConverted(ctx, input.TrialID); err != nil {
			log.Printf("warning: failed to mark trial %s converted: %v", input.TrialID, err)
		}
	}

	return &CreateClientOutput{
		ID:             client.ID,
		DashboardToken: client.DashboardToken,
		DashboardURL:   fmt.Sprintf("%s/api/dashboard/%s", uc.BaseURL, client.DashboardToken),
	}, nil
}
