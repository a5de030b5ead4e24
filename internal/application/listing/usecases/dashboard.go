package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ListOwnListingsCommand struct {
	OwnerID uint
	// Status, when non-empty, narrows the dashboard list to one state.
	Status string
	Page   int
}

// ListOwnListingsUseCase pages through an agent's own listings in every
// publication state for the dashboard.
type ListOwnListingsUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
}

func NewListOwnListingsUseCase(listingRepo listing.Repository, cityRepo listing.CityRepository) *ListOwnListingsUseCase {
	return &ListOwnListingsUseCase{listingRepo: listingRepo, cityRepo: cityRepo}
}

func (uc *ListOwnListingsUseCase) Execute(ctx context.Context, cmd ListOwnListingsCommand) (*SearchResult, error) {
	var statuses []publication.Status
	if cmd.Status != "" {
		status, err := publication.ParseStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statuses = append(statuses, status)
	}

	pageSize := constants.ListingPageSize
	vis := listing.OwnerVisibility(cmd.OwnerID, statuses...)
	listings, total, err := uc.listingRepo.Search(ctx, listing.Filter{}, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list own listings: %w", err)
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

// GetListingCountsUseCase tallies an owner's listings per publication state
// for the dashboard header.
type GetListingCountsUseCase struct {
	listingRepo listing.Repository
}

func NewGetListingCountsUseCase(listingRepo listing.Repository) *GetListingCountsUseCase {
	return &GetListingCountsUseCase{listingRepo: listingRepo}
}

func (uc *GetListingCountsUseCase) Execute(ctx context.Context, ownerID uint) (*dto.StatusCountsResponse, error) {
	counts, err := uc.listingRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	resp := &dto.StatusCountsResponse{
		Draft:         counts[publication.StatusDraft],
		PendingReview: counts[publication.StatusPendingReview],
		Published:     counts[publication.StatusPublished],
		Returned:      counts[publication.StatusReturned],
	}
	resp.Total = resp.Draft + resp.PendingReview + resp.Published + resp.Returned
	return resp, nil
}
