package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Upsert(ctx context.Context, s *entity.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTrialRepository struct {
	mock.Mock
}

func (m *MockTrialRepository) Create(ctx context.Context, t *entity.TrialSignup) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrialRepository) List(ctx context.Context) ([]*entity.TrialSignup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TrialSignup), args.Error(1)
}

func (m *MockTrialRepository) MarkConverted(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrialRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTrialRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) FindByToken(ctx context.Context, token string) (*entity.Client, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateBilling(ctx context.Context, id, status, membershipID, userID string) error {
	args := m.Called(ctx, id, status, membershipID, userID)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead, activity *entity.LeadActivity) error {
	args := m.Called(ctx, l, activity)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Lead, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, f entity.LeadFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, u entity.LeadUpdate, activity *entity.LeadActivity) error {
	args := m.Called(ctx, id, u, activity)
	return args.Error(0)
}

func (m *MockLeadRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) CountToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) TotalJobValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type MockCapturePageRepository struct {
	mock.Mock
}

func (m *MockCapturePageRepository) Create(ctx context.Context, p *entity.CapturePage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCapturePageRepository) FindBySlug(ctx context.Context, slug string) (*entity.CapturePage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CapturePage), args.Error(1)
}

func (m *MockCapturePageRepository) FindByIndustryCity(ctx context.Context, industry, city string) (*entity.CapturePage, error) {
	args := m.Called(ctx, industry, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CapturePage), args.Error(1)
}

func (m *MockCapturePageRepository) IncrementViews(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

type MockLeadActivityRepository struct {
	mock.Mock
}

func (m *MockLeadActivityRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.LeadActivity, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeadActivity), args.Error(1)
}

type MockEmailLogRepository struct {
	mock.Mock
}

func (m *MockEmailLogRepository) Append(ctx context.Context, e *entity.EmailLogEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmailLogRepository) List(ctx context.Context, limit int) ([]*entity.EmailLogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailLogEntry), args.Error(1)
}

type MockEmailQueue struct {
	mock.Mock
	Jobs []queue.EmailJob
}

func (m *MockEmailQueue) PublishEmail(ctx context.Context, job queue.EmailJob) error {
	m.Jobs = append(m.Jobs, job)
	args := m.Called(ctx, job)
	return args.Error(0)
}
