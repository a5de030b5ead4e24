// Package subscription holds the plan catalog and the snapshot subscription
// ledger that gates listing creation.
package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/id"
)

// Plan is a purchasable subscription offer. Purchased subscriptions copy
// its fields at purchase time, so later plan edits never affect them.
type Plan struct {
	id           uint
	sid          string
	name         string
	listingQuota uint
	durationDays uint
	price        uint64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPlan creates a plan catalog entry.
func NewPlan(name string, listingQuota, durationDays uint, price uint64) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if listingQuota == 0 {
		return nil, fmt.Errorf("listing quota must be positive")
	}
	if durationDays == 0 {
		return nil, fmt.Errorf("duration must be positive")
	}
	now := biztime.NowUTC()
	return &Plan{
		sid:          id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		name:         name,
		listingQuota: listingQuota,
		durationDays: durationDays,
		price:        price,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPlan builds a Plan from stored state.
func ReconstructPlan(planID uint, sid, name string, listingQuota, durationDays uint, price uint64, createdAt, updatedAt time.Time) (*Plan, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	return &Plan{
		id:           planID,
		sid:          sid,
		name:         name,
		listingQuota: listingQuota,
		durationDays: durationDays,
		price:        price,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) SID() string          { return p.sid }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) ListingQuota() uint   { return p.listingQuota }
func (p *Plan) DurationDays() uint   { return p.durationDays }
func (p *Plan) Price() uint64        { return p.price }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// Duration converts the plan's day count to a time.Duration.
func (p *Plan) Duration() time.Duration {
	return time.Duration(p.durationDays) * 24 * time.Hour
}

// SetID assigns the database identity after insertion.
func (p *Plan) SetID(newID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	p.id = newID
	return nil
}

// Update edits the catalog entry. Existing subscriptions keep their
// purchase-time snapshot.
func (p *Plan) Update(name string, listingQuota, durationDays uint, price uint64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if listingQuota == 0 {
		return fmt.Errorf("listing quota must be positive")
	}
	if durationDays == 0 {
		return fmt.Errorf("duration must be positive")
	}
	p.name = name
	p.listingQuota = listingQuota
	p.durationDays = durationDays
	p.price = price
	p.updatedAt = biztime.NowUTC()
	return nil
}
