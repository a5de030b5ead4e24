package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type DeleteListingCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	SID       string
}

// DeleteListingUseCase removes a listing. Deletion never refunds quota; the
// subscription counter only ever moves forward.
type DeleteListingUseCase struct {
	listingRepo listing.Repository
	logger      logger.Interface
}

func NewDeleteListingUseCase(listingRepo listing.Repository, logger logger.Interface) *DeleteListingUseCase {
	return &DeleteListingUseCase{listingRepo: listingRepo, logger: logger}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, cmd DeleteListingCommand) error {
	l, err := uc.listingRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return fmt.Errorf("failed to load listing: %w", err)
	}
	if l == nil {
		return errors.NewNotFoundError("listing not found")
	}
	if !authorization.CanAccessOwned(cmd.ActorID, cmd.ActorRole, l.OwnerID()) {
		return errors.NewNotFoundError("listing not found")
	}

	if err := uc.listingRepo.Delete(ctx, l.ID()); err != nil {
		uc.logger.Errorw("failed to delete listing", "sid", cmd.SID, "error", err)
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	uc.logger.Infow("listing deleted", "sid", cmd.SID, "actor_id", cmd.ActorID)
	return nil
}
