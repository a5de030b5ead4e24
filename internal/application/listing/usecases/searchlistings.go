package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type SearchListingsCommand struct {
	Filter listing.Filter
	Page   int
}

// SearchResult is one page of the public listing catalog. Page carries the
// effective page after clamping, which can differ from the requested one.
type SearchResult struct {
	Items    []dto.ListingResponse
	Total    int64
	Page     int
	PageSize int
}

// SearchListingsUseCase runs the public catalog search. Only published
// listings are visible regardless of who asks.
type SearchListingsUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
}

func NewSearchListingsUseCase(listingRepo listing.Repository, cityRepo listing.CityRepository) *SearchListingsUseCase {
	return &SearchListingsUseCase{listingRepo: listingRepo, cityRepo: cityRepo}
}

func (uc *SearchListingsUseCase) Execute(ctx context.Context, cmd SearchListingsCommand) (*SearchResult, error) {
	pageSize := constants.ListingPageSize
	listings, total, err := uc.listingRepo.Search(ctx, cmd.Filter, listing.PublishedOnly(), cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
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

// LatestListingsUseCase feeds the homepage and sidebar widgets with the
// newest published listings.
type LatestListingsUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
}

func NewLatestListingsUseCase(listingRepo listing.Repository, cityRepo listing.CityRepository) *LatestListingsUseCase {
	return &LatestListingsUseCase{listingRepo: listingRepo, cityRepo: cityRepo}
}

func (uc *LatestListingsUseCase) Execute(ctx context.Context, limit int) ([]dto.ListingResponse, error) {
	if limit < 1 || limit > constants.ListingPageSize {
		limit = constants.ListingPageSize
	}
	listings, err := uc.listingRepo.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest listings: %w", err)
	}
	cityNames, err := cityNameIndex(ctx, uc.cityRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load city catalog: %w", err)
	}
	return dto.NewListingResponses(listings, cityNames), nil
}

// GetSearchBoundsUseCase computes the slider maxima the search form renders.
type GetSearchBoundsUseCase struct {
	listingRepo listing.Repository
}

func NewGetSearchBoundsUseCase(listingRepo listing.Repository) *GetSearchBoundsUseCase {
	return &GetSearchBoundsUseCase{listingRepo: listingRepo}
}

func (uc *GetSearchBoundsUseCase) Execute(ctx context.Context) (*dto.SearchBoundsResponse, error) {
	bounds, err := uc.listingRepo.Bounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute search bounds: %w", err)
	}
	resp := dto.NewSearchBoundsResponse(bounds)
	return &resp, nil
}
