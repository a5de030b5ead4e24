package dto

import (
	"time"

	"github.com/casaplex/casaplex/internal/domain/listing"
)

// ListingResponse is the API shape of a property listing. CityName and the
// owner fields are denormalized by the use cases; they are empty when the
// caller does not need them.
type ListingResponse struct {
	SID          string    `json:"sid"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DealType     string    `json:"deal_type"`
	Price        uint64    `json:"price"`
	MonthlyRent  *uint64   `json:"monthly_rent,omitempty"`
	CityID       uint      `json:"city_id"`
	CityName     string    `json:"city_name,omitempty"`
	OwnerSID     string    `json:"owner_sid,omitempty"`
	OwnerName    string    `json:"owner_name,omitempty"`
	SizeM2       uint      `json:"size_m2"`
	Rooms        uint      `json:"rooms"`
	BuildYear    uint      `json:"build_year"`
	Floor        int       `json:"floor"`
	Elevator     bool      `json:"elevator"`
	Parking      bool      `json:"parking"`
	Storeroom    bool      `json:"storeroom"`
	ImageURL     string    `json:"image_url,omitempty"`
	Gallery      []string  `json:"gallery,omitempty"`
	Status       string    `json:"status"`
	RevisionNote string    `json:"revision_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewListingResponse maps a listing entity to its API shape.
func NewListingResponse(l *listing.Listing) ListingResponse {
	attrs := l.Attrs()
	return ListingResponse{
		SID:          l.SID(),
		Title:        l.Title(),
		Description:  l.Description(),
		DealType:     string(l.DealType()),
		Price:        l.Price(),
		MonthlyRent:  l.MonthlyRent(),
		CityID:       l.CityID(),
		SizeM2:       attrs.SizeM2,
		Rooms:        attrs.Rooms,
		BuildYear:    attrs.BuildYear,
		Floor:        attrs.Floor,
		Elevator:     attrs.Elevator,
		Parking:      attrs.Parking,
		Storeroom:    attrs.Storeroom,
		ImageURL:     l.ImageURL(),
		Gallery:      l.Gallery(),
		Status:       l.Status().String(),
		RevisionNote: l.RevisionNote(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}

// NewListingResponses maps a listing page, filling city names from the
// catalog lookup.
func NewListingResponses(listings []*listing.Listing, cityNames map[uint]string) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp := NewListingResponse(l)
		resp.CityName = cityNames[l.CityID()]
		out = append(out, resp)
	}
	return out
}

// SearchBoundsResponse carries the slider maxima for the search form.
type SearchBoundsResponse struct {
	MaxPrice uint64 `json:"max_price"`
	MaxSize  uint   `json:"max_size"`
	MaxRooms uint   `json:"max_rooms"`
}

// NewSearchBoundsResponse maps the computed bounds.
func NewSearchBoundsResponse(b listing.SearchBounds) SearchBoundsResponse {
	return SearchBoundsResponse{
		MaxPrice: b.MaxPrice,
		MaxSize:  b.MaxSize,
		MaxRooms: b.MaxRooms,
	}
}

// StatusCountsResponse tallies an owner's listings per publication state
// for the dashboard header.
type StatusCountsResponse struct {
	Draft         int64 `json:"draft"`
	PendingReview int64 `json:"pending_review"`
	Published     int64 `json:"published"`
	Returned      int64 `json:"returned"`
	Total         int64 `json:"total"`
}

// CityResponse is the API shape of a city catalog entry.
type CityResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCityResponse maps a city entity.
func NewCityResponse(c *listing.City) CityResponse {
	return CityResponse{ID: c.ID(), Name: c.Name(), CreatedAt: c.CreatedAt()}
}

// NewCityResponses maps the city catalog.
func NewCityResponses(cities []*listing.City) []CityResponse {
	out := make([]CityResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, NewCityResponse(c))
	}
	return out
}
