package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

type CaptureLeadInput struct {
	CapturePage string `json:"capture_page"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Service     string `json:"service"`
	Message     string `json:"message"`
	Source      string `json:"source"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

type CaptureLeadOutput struct {
	ID string `json:"id"`
}

type CaptureLeadUseCase struct {
	Leads       entity.LeadRepositoryInterface
	Pages       entity.CapturePageRepositoryInterface
	Clients     entity.ClientRepositoryInterface
	Queue       queue.EmailQueueInterface
	NotifyEmail string
	BaseURL     string
}

func NewCaptureLeadUseCase(
	leads entity.LeadRepositoryInterface,
	pages entity.CapturePageRepositoryInterface,
	clients entity.ClientRepositoryInterface,
	q queue.EmailQueueInterface,
	notifyEmail, baseURL string,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Leads:       leads,
		Pages:       pages,
		Clients:     clients,
		Queue:       q,
		NotifyEmail: notifyEmail,
		BaseURL:     baseURL,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	var errs []ValidationError
	errs = requireField(errs, "name", input.Name)
	errs = requireField(errs, "phone", input.Phone)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	lead, err := entity.NewLead(input.Name, input.Phone)
	if err != nil {
		return nil, err
	}
	lead.CapturePage = input.CapturePage
	lead.Email = input.Email
	lead.Address = input.Address
	lead.City = input.City
	lead.PostalCode = input.PostalCode
	lead.Service = input.Service
	lead.Message = input.Message
	lead.Source = input.Source
	lead.UTMSource = input.UTMSource
	lead.UTMMedium = input.UTMMedium
	lead.UTMCampaign = input.UTMCampaign

	// An unknown or absent slug leaves the lead unassigned; that is not an
	// error, the operator sorts those out by hand.
	var client *entity.Client
	if input.CapturePage != "" {
		page, err := uc.Pages.FindBySlug(ctx, input.CapturePage)
		switch {
		case err == nil:
			lead.ClientID = page.ClientID
			client, err = uc.Clients.FindByID(ctx, page.ClientID)
			if err != nil {
				log.Printf("warning: page %s points at missing client %s: %v",
					page.Slug, page.ClientID, err)
			}
		case errors.Is(err, entity.ErrPageNotFound):
			// fall through unassigned
		default:
			log.Printf("warning: capture page lookup failed for %q: %v", input.CapturePage, err)
		}
	}

	activity := entity.NewLeadActivity(lead.ID, entity.ActivityActionCreated, map[string]any{
		"capture_page": lead.CapturePage,
		"source":       lead.Source,
	})

	if err := uc.Leads.Create(ctx, lead, activity); err != nil {
		return nil, err
	}

	if client != nil {
		notify(ctx, uc.Queue, queue.EmailJob{
			Template: string(mail.TemplateNewLeadNotification),
			To:       client.Email,
			Data: map[string]string{
				"lead_name":     lead.Name,
				"lead_phone":    lead.Phone,
				"lead_email":    lead.Email,
				"service":       lead.Service,
				"message":       lead.Message,
				"dashboard_url": fmt.Sprintf("%s/api/dashboard/%s", uc.BaseURL, client.DashboardToken),
			},
		})
	}

	notify(ctx, uc.Queue, queue.EmailJob{
		Template: string(mail.TemplateInternalNotification),
		To:       uc.NotifyEmail,
		Data: map[string]string{
			"subject": fmt.Sprintf("New lead: %s", lead.Name),
			"body": fmt.Sprintf("name: %s\nphone: %s\nemail: %s\nservice: %s\npage: %s\nmessage: %s",
				lead.Name, lead.Phone, lead.Email, lead.Service, lead.CapturePage, lead.Message),
		},
	})

	return &CaptureLeadOutput{ID: lead.ID}, nil
}
