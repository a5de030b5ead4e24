package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ListingsByAgentCommand struct {
	AgentSID string
	Page     int
}

// ListingsByAgentUseCase pages one agent's published listings for their
// public profile page. Deactivated agents read as missing, like the
// profile itself.
type ListingsByAgentUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
	agentRepo   agent.Repository
}

func NewListingsByAgentUseCase(
	listingRepo listing.Repository,
	cityRepo listing.CityRepository,
	agentRepo agent.Repository,
) *ListingsByAgentUseCase {
	return &ListingsByAgentUseCase{
		listingRepo: listingRepo,
		cityRepo:    cityRepo,
		agentRepo:   agentRepo,
	}
}

func (uc *ListingsByAgentUseCase) Execute(ctx context.Context, cmd ListingsByAgentCommand) (*SearchResult, error) {
	a, err := uc.agentRepo.GetBySID(ctx, cmd.AgentSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil || !a.IsActive() {
		return nil, errors.NewNotFoundError("agent not found")
	}

	pageSize := constants.ListingPageSize
	vis := listing.OwnerVisibility(a.ID(), publication.StatusPublished)
	listings, total, err := uc.listingRepo.Search(ctx, listing.Filter{}, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent listings: %w", err)
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
