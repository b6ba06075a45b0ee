package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/leadpilot/leadpilot/internal/entity"
)

const (
	histogramWeeks  = 4
	recentLeadLimit = 20
)

type DashboardStats struct {
	TotalLeads     int     `json:"total_leads"`
	NewLeads       int     `json:"new_leads"`
	ContactedLeads int     `json:"contacted_leads"`
	BookedLeads    int     `json:"booked_leads"`
	JobValue       float64 `json:"job_value"`
	CloseRate      string  `json:"close_rate"`
	CostPerLead    int     `json:"cost_per_lead"`
}

type WeeklyBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RecentLead is the redacted projection shown on the client dashboard.
type RecentLead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email,omitempty"`
	Service   string     `json:"service,omitempty"`
	Status    string     `json:"status"`
	JobValue  *float64   `json:"job_value,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type DashboardOutput struct {
	Client struct {
		BusinessName string `json:"business_name"`
		Plan         string `json:"plan"`
		Status       string `json:"status"`
	} `json:"client"`
	Stats       DashboardStats `json:"stats"`
	Weekly      []WeeklyBucket `json:"weekly"`
	RecentLeads []RecentLead   `json:"recent_leads"`
}

type DashboardUseCase struct {
	Clients entity.ClientRepositoryInterface
	Leads   entity.LeadRepositoryInterface
}

func NewDashboardUseCase(clients entity.ClientRepositoryInterface, leads entity.LeadRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{Clients: clients, Leads: leads}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, token string) (*DashboardOutput, error) {
	client, err := uc.Clients.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	leads, err := uc.Leads.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	out := &DashboardOutput{
		Stats:       ComputeStats(leads, client.PlanPrice),
		Weekly:      WeeklyHistogram(leads, time.Now()),
		RecentLeads: projectRecent(leads, recentLeadLimit),
	}
	out.Client.BusinessName = client.BusinessName
	out.Client.Plan = client.Plan
	out.Client.Status = client.Status

	return out, nil
}

// ComputeStats aggregates a client's leads. Zero leads yields zero values,
// never a division error.
func ComputeStats(leads []*entity.Lead, planPrice float64) DashboardStats {
	s := DashboardStats{TotalLeads: len(leads), CloseRate: "0.0"}

	for _, l := range leads {
		switch l.Status {
		case entity.LeadStatusNew:
			s.NewLeads++
		case entity.LeadStatusContacted:
			s.ContactedLeads++
		case entity.LeadStatusBooked:
			s.BookedLeads++
		}
		if l.JobValue != nil {
			s.JobValue += *l.JobValue
		}
	}

	if s.TotalLeads > 0 {
		rate := float64(s.BookedLeads) / float64(s.TotalLeads) * 100
		s.CloseRate = fmt.Sprintf("%.1f", math.Round(rate*10)/10)
		s.CostPerLead = int(math.Round(planPrice / float64(s.TotalLeads)))
	}

	return s
}

// WeeklyHistogram partitions leads into four consecutive 7-day windows
// ending at now, labeled W1..W4 oldest first. Leads older than 28 days are
// dropped.
func WeeklyHistogram(leads []*entity.Lead, now time.Time) []WeeklyBucket {
	buckets := make([]WeeklyBucket, histogramWeeks)
	for i := range buckets {
		buckets[i].Label = fmt.Sprintf("W%d", i+1)
	}

	for _, l := range leads {
		age := now.Sub(l.CreatedAt)
		if age < 0 {
			continue
		}
		weeksAgo := int(age.Hours() / (24 * 7))
		if weeksAgo >= histogramWeeks {
			continue
		}
		buckets[histogramWeeks-1-weeksAgo].Count++
	}

	return buckets
}

func projectRecent(leads []*entity.Lead, limit int) []RecentLead {
	// ListByClient returns newest first already.
	if len(leads) > limit {
		leads = leads[:limit]
	}

	out := make([]RecentLead, 0, len(leads))
	for _, l := range leads {
		out = append(out, RecentLead{
			ID:        l.ID,
			Name:      l.Name,
			Phone:     l.Phone,
			Email:     l.Email,
			Service:   l.Service,
			Status:    l.Status,
			JobValue:  l.JobValue,
			CreatedAt: l.CreatedAt,
		})
	}
	return out
}
