package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

type WeeklyReportUseCase struct {
	Clients entity.ClientRepositoryInterface
	Leads   entity.LeadRepositoryInterface
	Queue   queue.EmailQueueInterface
	BaseURL string
}

func NewWeeklyReportUseCase(
	clients entity.ClientRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	q queue.EmailQueueInterface,
	baseURL string,
) *WeeklyReportUseCase {
	return &WeeklyReportUseCase{Clients: clients, Leads: leads, Queue: q, BaseURL: baseURL}
}

// Execute renders last week's numbers for one client and queues the report
// email to their contact address.
func (uc *WeeklyReportUseCase) Execute(ctx context.Context, clientID string) error {
	client, err := uc.Clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}

	leads, err := uc.Leads.ListByClient(ctx, client.ID)
	if err != nil {
		return err
	}

	cutoff := time.Now().AddDate(0, 0, -7)
	var lastWeek []*entity.Lead
	for _, l := range leads {
		if l.CreatedAt.After(cutoff) {
			lastWeek = append(lastWeek, l)
		}
	}

	stats := ComputeStats(lastWeek, client.PlanPrice)

	notify(ctx, uc.Queue, queue.EmailJob{
		Template: string(mail.TemplateWeeklyReport),
		To:       client.Email,
		Data: map[string]string{
			"business_name": client.BusinessName,
			"total_leads":   fmt.Sprintf("%d", stats.TotalLeads),
			"booked":        fmt.Sprintf("%d", stats.BookedLeads),
			"close_rate":    stats.CloseRate,
			"job_value":     fmt.Sprintf("%.2f", stats.JobValue),
			"dashboard_url": fmt.Sprintf("%s/api/dashboard/%s", uc.BaseURL, client.DashboardToken),
		},
	})

	return nil
}
