// Package usecases holds the FAQ page operations: a public list and
// operator-side editing.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/casaplex/casaplex/internal/domain/faq"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// FAQResponse is the API shape of an FAQ entry.
type FAQResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

func newFAQResponse(f *faq.FAQ) FAQResponse {
	return FAQResponse{ID: f.ID(), Title: f.Title(), Answer: f.Answer(), CreatedAt: f.CreatedAt()}
}

// ListFAQsUseCase returns every FAQ entry for the public page.
type ListFAQsUseCase struct {
	faqRepo faq.Repository
}

func NewListFAQsUseCase(faqRepo faq.Repository) *ListFAQsUseCase {
	return &ListFAQsUseCase{faqRepo: faqRepo}
}

func (uc *ListFAQsUseCase) Execute(ctx context.Context) ([]FAQResponse, error) {
	entries, err := uc.faqRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQ entries: %w", err)
	}
	out := make([]FAQResponse, 0, len(entries))
	for _, f := range entries {
		out = append(out, newFAQResponse(f))
	}
	return out, nil
}

type SaveFAQCommand struct {
	// ID is zero for creation.
	ID     uint
	Title  string
	Answer string
}

// SaveFAQUseCase creates or edits an FAQ entry.
type SaveFAQUseCase struct {
	faqRepo faq.Repository
	logger  logger.Interface
}

func NewSaveFAQUseCase(faqRepo faq.Repository, logger logger.Interface) *SaveFAQUseCase {
	return &SaveFAQUseCase{faqRepo: faqRepo, logger: logger}
}

func (uc *SaveFAQUseCase) Execute(ctx context.Context, cmd SaveFAQCommand) (*FAQResponse, error) {
	if cmd.ID == 0 {
		entry, err := faq.New(cmd.Title, cmd.Answer)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.faqRepo.Create(ctx, entry); err != nil {
			uc.logger.Errorw("failed to create FAQ entry", "error", err)
			return nil, fmt.Errorf("failed to create FAQ entry: %w", err)
		}
		uc.logger.Infow("FAQ entry created", "faq_id", entry.ID())
		resp := newFAQResponse(entry)
		return &resp, nil
	}

	entry, err := uc.faqRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load FAQ entry: %w", err)
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("FAQ entry not found")
	}
	if err := entry.Update(cmd.Title, cmd.Answer); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.faqRepo.Update(ctx, entry); err != nil {
		uc.logger.Errorw("failed to update FAQ entry", "faq_id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update FAQ entry: %w", err)
	}
	uc.logger.Infow("FAQ entry updated", "faq_id", cmd.ID)
	resp := newFAQResponse(entry)
	return &resp, nil
}

// DeleteFAQUseCase removes an FAQ entry.
type DeleteFAQUseCase struct {
	faqRepo faq.Repository
	logger  logger.Interface
}

func NewDeleteFAQUseCase(faqRepo faq.Repository, logger logger.Interface) *DeleteFAQUseCase {
	return &DeleteFAQUseCase{faqRepo: faqRepo, logger: logger}
}

func (uc *DeleteFAQUseCase) Execute(ctx context.Context, faqID uint) error {
	entry, err := uc.faqRepo.GetByID(ctx, faqID)
	if err != nil {
		return fmt.Errorf("failed to load FAQ entry: %w", err)
	}
	if entry == nil {
		return errors.NewNotFoundError("FAQ entry not found")
	}
	if err := uc.faqRepo.Delete(ctx, faqID); err != nil {
		uc.logger.Errorw("failed to delete FAQ entry", "faq_id", faqID, "error", err)
		return fmt.Errorf("failed to delete FAQ entry: %w", err)
	}
	uc.logger.Infow("FAQ entry deleted", "faq_id", faqID)
	return nil
}
