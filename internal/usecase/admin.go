package usecase

import (
	"context"

	"github.com/leadpilot/leadpilot/internal/entity"
)

type OverviewOutput struct {
	Subscribers   int     `json:"subscribers"`
	Trials        int     `json:"trials"`
	ActiveTrials  int     `json:"active_trials"`
	Clients       int     `json:"clients"`
	Leads         int     `json:"leads"`
	LeadsToday    int     `json:"leads_today"`
	TotalJobValue float64 `json:"total_job_value"`
}

type OverviewUseCase struct {
	Subscribers entity.SubscriberRepositoryInterface
	Trials      entity.TrialRepositoryInterface
	Clients     entity.ClientRepositoryInterface
	Leads       entity.LeadRepositoryInterface
}

func NewOverviewUseCase(
	subscribers entity.SubscriberRepositoryInterface,
	trials entity.TrialRepositoryInterface,
	clients entity.ClientRepositoryInterface,
	leads entity.LeadRepositoryInterface,
) *OverviewUseCase {
	return &OverviewUseCase{
		Subscribers: subscribers,
		Trials:      trials,
		Clients:     clients,
		Leads:       leads,
	}
}

func (uc *OverviewUseCase) Execute(ctx context.Context) (*OverviewOutput, error) {
	out := &OverviewOutput{}
	var err error

	if out.Subscribers, err = uc.Subscribers.Count(ctx); err != nil {
		return nil, err
	}
	if out.Trials, err = uc.Trials.Count(ctx); err != nil {
		return nil, err
	}
	if out.ActiveTrials, err = uc.Trials.CountActive(ctx); err != nil {
		return nil, err
	}
	if out.Clients, err = uc.Clients.Count(ctx); err != nil {
		return nil, err
	}
	if out.Leads, err = uc.Leads.Count(ctx); err != nil {
		return nil, err
	}
	if out.LeadsToday, err = uc.Leads.CountToday(ctx); err != nil {
		return nil, err
	}
	if out.TotalJobValue, err = uc.Leads.TotalJobValue(ctx); err != nil {
		return nil, err
	}

	return out, nil
}
