package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/leadpilot/leadpilot/internal/entity"
	"github.com/leadpilot/leadpilot/internal/infra/mail"
	"github.com/leadpilot/leadpilot/internal/infra/queue"
)

type TrialSignupInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Industry     string `json:"industry"`
	City         string `json:"city"`
	Source       string `json:"source"`
}

type TrialSignupOutput struct {
	ID string `json:"id"`
}

type TrialSignupUseCase struct {
	Trials      entity.TrialRepositoryInterface
	Subscribers entity.SubscriberRepositoryInterface
	Queue       queue.EmailQueueInterface
	NotifyEmail string
}

func NewTrialSignupUseCase(
	trials entity.TrialRepositoryInterface,
	subscribers entity.SubscriberRepositoryInterface,
	q queue.EmailQueueInterface,
	notifyEmail string,
) *TrialSignupUseCase {
	return &TrialSignupUseCase{
		Trials:      trials,
		Subscribers: subscribers,
		Queue:       q,
		NotifyEmail: notifyEmail,
	}
}

func (uc *TrialSignupUseCase) Execute(ctx context.Context, input TrialSignupInput) (*TrialSignupOutput, error) {
	if errs := ValidateTrialSignupInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	trial, err := entity.NewTrialSignup(
		input.FirstName, input.LastName, input.BusinessName,
		input.Email, input.Phone, input.Industry, input.City, input.Source,
	)
	if err != nil {
		return nil, err
	}

	// Returns entity.ErrEmailAlreadyExists when the email already has a trial.
	if err := uc.Trials.Create(ctx, trial); err != nil {
		return nil, err
	}

	// Side effect: every trial signer is also a subscriber. Best effort.
	if sub, err := entity.NewSubscriber(trial.Email, "trial_signup"); err == nil {
		if err := uc.Subscribers.Upsert(ctx, sub); err != nil {
			log.Printf("warning: subscriber upsert for trial %s failed: %v", trial.ID, err)
		}
	}

	notify(ctx, uc.Queue, queue.EmailJob{
		Template: string(mail.TemplateTrialWelcome),
		To:       trial.Email,
		Data:     map[string]string{"first_name": trial.FirstName},
	})

	notify(ctx, uc.Queue, queue.EmailJob{
		Template: string(mail.TemplateInternalNotification),
		To:       uc.NotifyEmail,
		Data: map[string]string{
			"subject": fmt.Sprintf("New trial signup: %s (%s)", trial.FirstName, trial.BusinessName),
			"body": fmt.Sprintf("name: %s %s\nbusiness: %s\nemail: %s\nphone: %s\nindustry: %s\ncity: %s",
				trial.FirstName, trial.LastName, trial.BusinessName, trial.Email,
				trial.Phone, trial.Industry, trial.City),
		},
	})

	return &TrialSignupOutput{ID: trial.ID}, nil
}

func ValidateTrialSignupInput(input TrialSignupInput) []ValidationError {
	var errs []ValidationError
	errs = requireField(errs, "first_name", input.FirstName)
	errs = requireField(errs, "email", input.Email)
	errs = requireField(errs, "phone", input.Phone)
	if len(errs) > 0 {
		return errs
	}

	if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if !isValidPhone(input.Phone) {
		errs = append(errs, ValidationError{"phone", "must be a valid phone number"})
	}
	return errs
}
