package usecase

import (
	"context"
	"fmt"

	"github.com/leadpilot/leadpilot/internal/entity"
)

type CreateCapturePageInput struct {
	ClientID string `json:"client_id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Industry string `json:"industry"`
	City     string `json:"city"`
}

type CreateCapturePageOutput struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CreateCapturePageUseCase struct {
	Pages   entity.CapturePageRepositoryInterface
	Clients entity.ClientRepositoryInterface
	BaseURL string
}

func NewCreateCapturePageUseCase(pages entity.CapturePageRepositoryInterface, clients entity.ClientRepositoryInterface, baseURL string) *CreateCapturePageUseCase {
	return &CreateCapturePageUseCase{Pages: pages, Clients: clients, BaseURL: baseURL}
}

func (uc *CreateCapturePageUseCase) Execute(ctx context.Context, input CreateCapturePageInput) (*CreateCapturePageOutput, error) {
	var errs []ValidationError
	errs = requireField(errs, "client_id", input.ClientID)
	errs = requireField(errs, "slug", input.Slug)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	if _, err := uc.Clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	page, err := entity.NewCapturePage(input.ClientID, input.Slug, input.Title, input.Industry, input.City)
	if err != nil {
		return nil, err
	}

	// A slug collision surfaces as entity.ErrSlugAlreadyExists; the existing
	// page's client binding is never overwritten.
	if err := uc.Pages.Create(ctx, page); err != nil {
		return nil, err
	}

	return &CreateCapturePageOutput{
		ID:  page.ID,
		URL: fmt.Sprintf("%s/quote/%s", uc.BaseURL, page.Slug),
	}, nil
}
