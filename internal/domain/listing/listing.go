// Package listing holds the property listing aggregate and its city catalog.
package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/id"
)

// Attributes groups the physical properties of a listed property.
type Attributes struct {
	SizeM2    uint
	Rooms     uint
	BuildYear uint
	Floor     int
	Elevator  bool
	Parking   bool
	Storeroom bool
}

// Listing is the aggregate root for a property listing.
type Listing struct {
	publication.Workflow

	id          uint
	sid         string
	ownerID     *uint
	cityID      uint
	title       string
	description string
	dealType    DealType
	price       uint64
	monthlyRent *uint64
	attrs       Attributes
	imageURL    string
	gallery     []string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewListing creates a listing owned by the given agent. A requested status
// outside the author-requestable set is forced to draft. Monthly rent is
// dropped for sale listings and defaulted to zero for rentals.
func NewListing(ownerID uint, cityID uint, title, description string, dealType DealType, price uint64, monthlyRent *uint64, attrs Attributes, imageURL string, gallery []string, requested publication.Status) (*Listing, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID cannot be zero")
	}
	if cityID == 0 {
		return nil, fmt.Errorf("city ID cannot be zero")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !dealType.IsValid() {
		return nil, fmt.Errorf("invalid deal type: %s", dealType)
	}

	now := biztime.NowUTC()
	l := &Listing{
		Workflow:    publication.NewWorkflow(requested),
		sid:         id.MustGenerateWithPrefix(id.PrefixListing, id.DefaultLength),
		ownerID:     &ownerID,
		cityID:      cityID,
		title:       title,
		description: description,
		dealType:    dealType,
		price:       price,
		attrs:       attrs,
		imageURL:    imageURL,
		gallery:     gallery,
		createdAt:   now,
		updatedAt:   now,
	}
	l.monthlyRent = normalizeRent(dealType, monthlyRent)
	return l, nil
}

// normalizeRent enforces the deal-type coupling of the monthly rent field.
func normalizeRent(dealType DealType, rent *uint64) *uint64 {
	if dealType == DealSale {
		return nil
	}
	if rent == nil {
		zero := uint64(0)
		return &zero
	}
	return rent
}

// ReconstructParams rehydrates a Listing from persistence.
type ReconstructParams struct {
	ID           uint
	SID          string
	OwnerID      *uint
	CityID       uint
	Title        string
	Description  string
	DealType     DealType
	Price        uint64
	MonthlyRent  *uint64
	Attrs        Attributes
	ImageURL     string
	Gallery      []string
	Status       publication.Status
	RevisionNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct builds a Listing from stored state.
func Reconstruct(p ReconstructParams) (*Listing, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("listing ID cannot be zero")
	}
	wf, err := publication.ReconstructWorkflow(p.Status, p.RevisionNote)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Workflow:    wf,
		id:          p.ID,
		sid:         p.SID,
		ownerID:     p.OwnerID,
		cityID:      p.CityID,
		title:       p.Title,
		description: p.Description,
		dealType:    p.DealType,
		price:       p.Price,
		monthlyRent: normalizeRent(p.DealType, p.MonthlyRent),
		attrs:       p.Attrs,
		imageURL:    p.ImageURL,
		gallery:     p.Gallery,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

func (l *Listing) ID() uint             { return l.id }
func (l *Listing) SID() string          { return l.sid }
func (l *Listing) OwnerID() *uint       { return l.ownerID }
func (l *Listing) CityID() uint         { return l.cityID }
func (l *Listing) Title() string        { return l.title }
func (l *Listing) Description() string  { return l.description }
func (l *Listing) DealType() DealType   { return l.dealType }
func (l *Listing) Price() uint64        { return l.price }
func (l *Listing) MonthlyRent() *uint64 { return l.monthlyRent }
func (l *Listing) Attrs() Attributes    { return l.attrs }
func (l *Listing) ImageURL() string     { return l.imageURL }
func (l *Listing) Gallery() []string    { return l.gallery }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time { return l.updatedAt }

// IsOwnedBy reports whether the given agent owns this listing. Listings
// whose owner was deleted belong to nobody.
func (l *Listing) IsOwnedBy(agentID uint) bool {
	return l.ownerID != nil && *l.ownerID == agentID
}

// ClearOwner detaches the listing from a deleted agent account.
func (l *Listing) ClearOwner() {
	l.ownerID = nil
	l.touch()
}

// SetID assigns the database identity after insertion.
func (l *Listing) SetID(newID uint) error {
	if l.id != 0 {
		return fmt.Errorf("listing ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("listing ID cannot be zero")
	}
	l.id = newID
	return nil
}

// Update is the content edit shared by owner and operator paths. asOwner
// selects the author-side workflow rules, which freeze edits while the
// listing is pending review. Editing a published listing pulls it back to
// draft for either role.
func (l *Listing) Update(cityID uint, title, description string, dealType DealType, price uint64, monthlyRent *uint64, attrs Attributes, imageURL string, gallery []string, requested publication.Status, asOwner bool) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if cityID == 0 {
		return fmt.Errorf("city ID cannot be zero")
	}
	if !dealType.IsValid() {
		return fmt.Errorf("invalid deal type: %s", dealType)
	}

	if asOwner {
		if err := l.AuthorEdit(requested); err != nil {
			return err
		}
	} else {
		l.OperatorEdit(requested)
	}

	l.cityID = cityID
	l.title = title
	l.description = description
	l.dealType = dealType
	l.price = price
	l.monthlyRent = normalizeRent(dealType, monthlyRent)
	l.attrs = attrs
	l.imageURL = imageURL
	l.gallery = gallery
	l.touch()
	return nil
}

// Submit sends a draft or returned listing to the review queue.
func (l *Listing) Submit() error {
	if err := l.Resubmit(); err != nil {
		return err
	}
	l.touch()
	return nil
}

// Approve publishes a listing under review.
func (l *Listing) Approve() error {
	if err := l.Workflow.Approve(); err != nil {
		return err
	}
	l.touch()
	return nil
}

// Reject returns a listing to its author with a mandatory revision note.
func (l *Listing) Reject(note string) error {
	if err := l.Workflow.Reject(note); err != nil {
		return err
	}
	l.touch()
	return nil
}

func (l *Listing) touch() {
	l.updatedAt = biztime.NowUTC()
}
