package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type UpdateListingCommand struct {
	ActorID         uint
	ActorRole       authorization.Role
	SID             string
	CityID          uint
	Title           string
	Description     string
	DealType        string
	Price           uint64
	MonthlyRent     *uint64
	Attrs           listing.Attributes
	ImageURL        string
	Gallery         []string
	RequestedStatus string
}

// UpdateListingUseCase applies a content edit. Owners follow the author
// workflow rules, so edits are refused while the listing sits in the review
// queue. Operators edit through that freeze, but a published listing drops
// back to draft for either role.
type UpdateListingUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
	agentRepo   agent.Repository
	notifier    SubmissionNotifier
	logger      logger.Interface
}

func NewUpdateListingUseCase(
	listingRepo listing.Repository,
	cityRepo listing.CityRepository,
	agentRepo agent.Repository,
	notifier SubmissionNotifier,
	logger logger.Interface,
) *UpdateListingUseCase {
	return &UpdateListingUseCase{
		listingRepo: listingRepo,
		cityRepo:    cityRepo,
		agentRepo:   agentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, cmd UpdateListingCommand) (*dto.ListingResponse, error) {
	l, err := uc.listingRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}
	if !authorization.CanAccessOwned(cmd.ActorID, cmd.ActorRole, l.OwnerID()) {
		return nil, errors.NewNotFoundError("listing not found")
	}

	dealType, err := listing.ParseDealType(cmd.DealType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	requested := l.Status()
	if cmd.RequestedStatus != "" {
		requested, err = publication.ParseStatus(cmd.RequestedStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	city, err := uc.cityRepo.GetByID(ctx, cmd.CityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load city: %w", err)
	}
	if city == nil {
		return nil, errors.NewValidationError("unknown city")
	}

	prevStatus := l.Status()
	asOwner := !cmd.ActorRole.IsOperator()
	if err := l.Update(cmd.CityID, cmd.Title, cmd.Description, dealType, cmd.Price,
		cmd.MonthlyRent, cmd.Attrs, cmd.ImageURL, cmd.Gallery, requested, asOwner); err != nil {
		if stderrors.Is(err, publication.ErrFrozenUnderReview) {
			return nil, errors.NewInvalidStateError("listing is under review and cannot be edited")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.listingRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to update listing", "sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	uc.logger.Infow("listing updated",
		"sid", l.SID(),
		"actor_id", cmd.ActorID,
		"status", l.Status())

	if l.Status() == publication.StatusPendingReview && prevStatus != publication.StatusPendingReview {
		uc.notifySubmission(ctx, l)
	}

	resp := dto.NewListingResponse(l)
	resp.CityName = city.Name()
	return &resp, nil
}

func (uc *UpdateListingUseCase) notifySubmission(ctx context.Context, l *listing.Listing) {
	ownerName := ""
	if ownerID := l.OwnerID(); ownerID != nil {
		owner, err := uc.agentRepo.GetByID(ctx, *ownerID)
		if err == nil && owner != nil {
			ownerName = owner.Name()
		}
	}
	if err := uc.notifier.SendSubmissionNotice("listing", l.Title(), ownerName); err != nil {
		uc.logger.Warnw("submission notice failed", "sid", l.SID(), "error", err)
	}
}
