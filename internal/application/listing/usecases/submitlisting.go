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

type SubmitListingCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	SID       string
}

// SubmitListingUseCase sends a draft or returned listing to the review
// queue and notifies the operator mailbox.
type SubmitListingUseCase struct {
	listingRepo listing.Repository
	agentRepo   agent.Repository
	notifier    SubmissionNotifier
	logger      logger.Interface
}

func NewSubmitListingUseCase(
	listingRepo listing.Repository,
	agentRepo agent.Repository,
	notifier SubmissionNotifier,
	logger logger.Interface,
) *SubmitListingUseCase {
	return &SubmitListingUseCase{
		listingRepo: listingRepo,
		agentRepo:   agentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *SubmitListingUseCase) Execute(ctx context.Context, cmd SubmitListingCommand) (*dto.ListingResponse, error) {
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

	if err := l.Submit(); err != nil {
		if stderrors.Is(err, publication.ErrNotReturned) {
			return nil, errors.NewInvalidStateError("listing cannot be submitted from its current state")
		}
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.listingRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to submit listing", "sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to submit listing: %w", err)
	}

	uc.logger.Infow("listing submitted for review", "sid", l.SID(), "actor_id", cmd.ActorID)

	ownerName := ""
	if actor, err := uc.agentRepo.GetByID(ctx, cmd.ActorID); err == nil && actor != nil {
		ownerName = actor.Name()
	}
	if err := uc.notifier.SendSubmissionNotice("listing", l.Title(), ownerName); err != nil {
		uc.logger.Warnw("submission notice failed", "sid", l.SID(), "error", err)
	}

	resp := dto.NewListingResponse(l)
	return &resp, nil
}
