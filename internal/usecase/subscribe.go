package usecase

import (
	"context"
	"fmt"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

type SubscribeInput struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type SubscribeUseCase struct {
	Subscribers entity.SubscriberRepositoryInterface
	Queue       queue.EmailQueueInterface
	NotifyEmail string
}

func NewSubscribeUseCase(subscribers entity.SubscriberRepositoryInterface, q queue.EmailQueueInterface, notifyEmail string) *SubscribeUseCase {
	return &SubscribeUseCase{
		Subscribers: subscribers,
		Queue:       q,
		NotifyEmail: notifyEmail,
	}
}

// Execute is idempotent: a repeat email is a no-op, not an error.
func (uc *SubscribeUseCase) Execute(ctx context.Context, input SubscribeInput) error {
	var errs []ValidationError
	errs = requireField(errs, "email", input.Email)
	if len(errs) == 0 && !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if len(errs) > 0 {
		return errs[0]
	}

	sub, err := entity.NewSubscriber(input.Email, input.Source)
	if err != nil {
		return ValidationError{"email", err.Error()}
	}

	if err := uc.Subscribers.Upsert(ctx, sub); err != nil {
		return err
	}

	notify(ctx, uc.Queue, queue.EmailJob{
		Template: string(mail.TemplateInternalNotification),
		To:       uc.NotifyEmail,
		Data: map[string]string{
			"subject": fmt.Sprintf("New subscriber: %s", sub.Email),
			"body":    fmt.Sprintf("email: %s\nsource: %s", sub.Email, sub.Source),
		},
	})

	return nil
}
