package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

type GetListingCommand struct {
	// ActorID is zero for anonymous callers.
	ActorID   uint
	ActorRole authorization.Role
	SID       string
}

// GetListingUseCase loads one listing for the detail page. Unpublished
// listings are visible only to their owner and to operators; everyone else
// gets a not-found, so hidden and missing are indistinguishable.
type GetListingUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
	agentRepo   agent.Repository
}

func NewGetListingUseCase(
	listingRepo listing.Repository,
	cityRepo listing.CityRepository,
	agentRepo agent.Repository,
) *GetListingUseCase {
	return &GetListingUseCase{
		listingRepo: listingRepo,
		cityRepo:    cityRepo,
		agentRepo:   agentRepo,
	}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, cmd GetListingCommand) (*dto.ListingResponse, error) {
	l, err := uc.listingRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("listing not found")
	}
	if !l.IsPublished() && !authorization.CanAccessOwned(cmd.ActorID, cmd.ActorRole, l.OwnerID()) {
		return nil, errors.NewNotFoundError("listing not found")
	}

	resp := dto.NewListingResponse(l)

	if city, err := uc.cityRepo.GetByID(ctx, l.CityID()); err == nil && city != nil {
		resp.CityName = city.Name()
	}
	if ownerID := l.OwnerID(); ownerID != nil {
		owner, err := uc.agentRepo.GetByID(ctx, *ownerID)
		if err == nil && owner != nil {
			resp.OwnerSID = owner.SID()
			resp.OwnerName = owner.Name()
		}
	}
	return &resp, nil
}
