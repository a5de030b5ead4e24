package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ListListingsForReviewCommand struct {
	// Status, when non-empty, narrows the moderation list to one state.
	// Empty defaults to the review queue.
	Status string
	Page   int
}

// ListListingsForReviewUseCase pages the operator moderation view. The
// route behind it is operator-only.
type ListListingsForReviewUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
}

func NewListListingsForReviewUseCase(listingRepo listing.Repository, cityRepo listing.CityRepository) *ListListingsForReviewUseCase {
	return &ListListingsForReviewUseCase{listingRepo: listingRepo, cityRepo: cityRepo}
}

func (uc *ListListingsForReviewUseCase) Execute(ctx context.Context, cmd ListListingsForReviewCommand) (*SearchResult, error) {
	status := publication.StatusPendingReview
	if cmd.Status != "" {
		parsed, err := publication.ParseStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		status = parsed
	}

	pageSize := constants.ListingPageSize
	vis := listing.Visibility{Statuses: []publication.Status{status}}
	listings, total, err := uc.listingRepo.Search(ctx, listing.Filter{}, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings for review: %w", err)
	}

	cityNames, err := cityNameIndex(ctx, uc.cityRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load city catalog: %w", err)
	}

	return &SearchResult{
		Items:    dto.NewListingResponses(listings, cityNames),
		Total:    total,
		Page:     utils.ClampPage(cmd.Page, total, pageSize),
		PageSize: pageSize,
	}, nil
}

// ApproveListingUseCase publishes a listing sitting in the review queue.
type ApproveListingUseCase struct {
	listingRepo listing.Repository
	logger      logger.Interface
}

func NewApproveListingUseCase(listingRepo listing.Repository, logger logger.Interface) *ApproveListingUseCase {
	return &ApproveListingUseCase{listingRepo: listingRepo, logger: logger}
}

func (uc *ApproveListingUseCase) Execute(ctx context.Context, sid string) (*dto.ListingResponse, error) {
	l, err := uc.listingRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}

	if err := l.Approve(); err != nil {
		if stderrors.Is(err, publication.ErrNotPendingReview) {
			return nil, errors.NewInvalidStateError("listing is not pending review")
		}
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.listingRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to approve listing", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to approve listing: %w", err)
	}

	uc.logger.Infow("listing approved", "sid", sid)
	resp := dto.NewListingResponse(l)
	return &resp, nil
}

type RejectListingCommand struct {
	SID  string
	Note string
}

// RejectListingUseCase returns a pending listing to its author. The
// revision note is mandatory and travels with the listing until the author
// revises it.
type RejectListingUseCase struct {
	listingRepo listing.Repository
	logger      logger.Interface
}

func NewRejectListingUseCase(listingRepo listing.Repository, logger logger.Interface) *RejectListingUseCase {
	return &RejectListingUseCase{listingRepo: listingRepo, logger: logger}
}

func (uc *RejectListingUseCase) Execute(ctx context.Context, cmd RejectListingCommand) (*dto.ListingResponse, error) {
	l, err := uc.listingRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}

	if err := l.Reject(cmd.Note); err != nil {
		switch {
		case stderrors.Is(err, publication.ErrNotPendingReview):
			return nil, errors.NewInvalidStateError("listing is not pending review")
		case stderrors.Is(err, publication.ErrRevisionNoteRequired):
			return nil, errors.NewValidationError("a revision note is required")
		default:
			return nil, errors.NewInvalidStateError(err.Error())
		}
	}

	if err := uc.listingRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to reject listing", "sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to reject listing: %w", err)
	}

	uc.logger.Infow("listing returned for revision", "sid", cmd.SID)
	resp := dto.NewListingResponse(l)
	return &resp, nil
}
