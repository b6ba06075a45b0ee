package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
)

func TestSubscribeSuccess(t *testing.T) {
	mockSubs := new(MockSubscriberRepository)
	mockQueue := new(MockEmailQueue)

	mockSubs.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishEmail", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubscribeUseCase(mockSubs, mockQueue, "ops@example.com")
	err := uc.Execute(context.Background(), SubscribeInput{
		Email:  "  NEW@Example.COM ",
		Source: "landing",
	})

	assert.NoError(t, err)
	mockSubs.AssertCalled(t, "Upsert", mock.Anything, mock.MatchedBy(func(s *entity.Subscriber) bool {
		return s.Email == "new@example.com" && s.Source == "landing" && s.Status == entity.SubscriberStatusActive
	}))
	assert.Len(t, mockQueue.Jobs, 1)
	assert.Equal(t, string(mail.TemplateInternalNotification), mockQueue.Jobs[0].Template)
	assert.Equal(t, "ops@example.com", mockQueue.Jobs[0].To)
}

func TestSubscribeMissingEmail(t *testing.T) {
	mockSubs := new(MockSubscriberRepository)
	mockQueue := new(MockEmailQueue)

	uc := NewSubscribeUseCase(mockSubs, mockQueue, "ops@example.com")
	err := uc.Execute(context.Background(), SubscribeInput{Source: "landing"})

	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
	mockSubs.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	mockSubs := new(MockSubscriberRepository)
	mockQueue := new(MockEmailQueue)

	uc := NewSubscribeUseCase(mockSubs, mockQueue, "ops@example.com")
	err := uc.Execute(context.Background(), SubscribeInput{Email: "not-an-email"})

	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

// A repeat subscribe is a silent no-op at the repository level, so the
// usecase still reports success and still pings the internal inbox.
func TestSubscribeRepeatEmailIsIdempotent(t *testing.T) {
	mockSubs := new(MockSubscriberRepository)
	mockQueue := new(MockEmailQueue)

	mockSubs.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishEmail", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubscribeUseCase(mockSubs, mockQueue, "ops@example.com")

	input := SubscribeInput{Email: "repeat@example.com", Source: "landing"}
	assert.NoError(t, uc.Execute(context.Background(), input))
	assert.NoError(t, uc.Execute(context.Background(), input))

	mockSubs.AssertNumberOfCalls(t, "Upsert", 2)
}

// A broken queue must never fail the signup itself.
func TestSubscribeQueueFailureIsSwallowed(t *testing.T) {
	mockSubs := new(MockSubscriberRepository)
	mockQueue := new(MockEmailQueue)

	mockSubs.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	mockQueue.On("PublishEmail", mock.Anything, mock.Anything).Return(assert.AnError)

	uc := NewSubscribeUseCase(mockSubs, mockQueue, "ops@example.com")
	err := uc.Execute(context.Background(), SubscribeInput{Email: "ok@example.com"})

	assert.NoError(t, err)
}
