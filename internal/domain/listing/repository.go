package listing

import (
	"context"

	"github.com/casaplex/casaplex/internal/domain/publication"
)

// Visibility scopes a catalog query. Public callers are always handed
// VisibilityPublished; owner dashboards use VisibilityOwner.
type Visibility struct {
	// Statuses limits results to these publication states. Empty means any.
	Statuses []publication.Status
	// OwnerID, when set, limits results to that agent's listings.
	OwnerID *uint
}

// PublishedOnly is the visibility every unauthenticated caller gets.
func PublishedOnly() Visibility {
	return Visibility{Statuses: []publication.Status{publication.StatusPublished}}
}

// OwnerVisibility scopes results to one agent, optionally by status.
func OwnerVisibility(ownerID uint, statuses ...publication.Status) Visibility {
	return Visibility{Statuses: statuses, OwnerID: &ownerID}
}

// Filter carries the search-form criteria, all AND-combined.
type Filter struct {
	// Search matches title and description, OR'd with the owner name,
	// case-insensitive substring.
	Search    string
	CityID    *uint
	DealType  *DealType
	PriceMin  *uint64
	PriceMax  *uint64
	SizeMin   *uint
	SizeMax   *uint
	RoomsMin  *uint
	RoomsMax  *uint
	YearMin   *uint
	YearMax   *uint
	Elevator  *bool
	Parking   *bool
	Storeroom *bool
}

// SearchBounds holds the maxima the public search form uses for slider
// ranges, computed over published listings only.
type SearchBounds struct {
	MaxPrice uint64
	MaxSize  uint
	MaxRooms uint
}

// Repository is the persistence port for listings.
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, listingID uint) error

	// GetByID returns (nil, nil) when no listing matches.
	GetByID(ctx context.Context, listingID uint) (*Listing, error)
	GetBySID(ctx context.Context, sid string) (*Listing, error)

	// Search returns a page of matches newest-first plus the total count.
	Search(ctx context.Context, filter Filter, vis Visibility, page, pageSize int) ([]*Listing, int64, error)

	// Latest returns the newest published listings for sidebar widgets.
	Latest(ctx context.Context, limit int) ([]*Listing, error)

	// CountByStatus tallies an owner's listings per publication state.
	CountByStatus(ctx context.Context, ownerID uint) (map[publication.Status]int64, error)

	Bounds(ctx context.Context) (SearchBounds, error)

	// ClearOwner nulls the owner reference on all listings of a deleted
	// agent without touching their publication state.
	ClearOwner(ctx context.Context, ownerID uint) error
}
