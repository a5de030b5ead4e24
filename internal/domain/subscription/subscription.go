package subscription

import (
	"fmt"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/id"
)

// Subscription is a purchase-time snapshot of a plan. The plan's name,
// price, quota and duration are copied in so later plan edits never change
// what the agent bought. The active flag is one-way: the entitlement
// evaluation flips it false when the quota is exhausted or the term has
// expired, and nothing ever flips it back.
type Subscription struct {
	id        uint
	sid       string
	agentID   *uint
	planName  string
	planPrice uint64
	quota     uint
	usedCount uint
	expiresAt time.Time
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription purchases the given plan for the agent, snapshotting its
// terms. The expiry is fixed at purchase: now plus the plan duration.
func NewSubscription(agentID uint, plan *Plan) (*Subscription, error) {
	if agentID == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	now := biztime.NowUTC()
	return &Subscription{
		sid:       id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		agentID:   &agentID,
		planName:  plan.Name(),
		planPrice: plan.Price(),
		quota:     plan.ListingQuota(),
		expiresAt: now.Add(plan.Duration()),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructParams rehydrates a Subscription from persistence.
type ReconstructParams struct {
	ID        uint
	SID       string
	AgentID   *uint
	PlanName  string
	PlanPrice uint64
	Quota     uint
	UsedCount uint
	ExpiresAt time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reconstruct builds a Subscription from stored state.
func Reconstruct(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.PlanName == "" {
		return nil, fmt.Errorf("plan name snapshot is required")
	}
	return &Subscription{
		id:        p.ID,
		sid:       p.SID,
		agentID:   p.AgentID,
		planName:  p.PlanName,
		planPrice: p.PlanPrice,
		quota:     p.Quota,
		usedCount: p.UsedCount,
		expiresAt: p.ExpiresAt,
		active:    p.Active,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint             { return s.id }
func (s *Subscription) SID() string          { return s.sid }
func (s *Subscription) AgentID() *uint       { return s.agentID }
func (s *Subscription) PlanName() string     { return s.planName }
func (s *Subscription) PlanPrice() uint64    { return s.planPrice }
func (s *Subscription) Quota() uint          { return s.quota }
func (s *Subscription) UsedCount() uint      { return s.usedCount }
func (s *Subscription) ExpiresAt() time.Time { return s.expiresAt }
func (s *Subscription) IsActive() bool       { return s.active }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time { return s.updatedAt }

// RemainingQuota reports how many listings the subscription still covers.
func (s *Subscription) RemainingQuota() uint {
	if s.usedCount >= s.quota {
		return 0
	}
	return s.quota - s.usedCount
}

// SetID assigns the database identity after insertion.
func (s *Subscription) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = newID
	return nil
}

// IsExhausted reports whether the quota is fully used.
func (s *Subscription) IsExhausted() bool {
	return s.usedCount >= s.quota
}

// IsExpired reports whether the term has lapsed at the given instant.
// Equality with the expiry instant is not yet expired.
func (s *Subscription) IsExpired(now time.Time) bool {
	return now.After(s.expiresAt)
}

// Evaluate checks liveness at the given instant and flips the active flag
// false when the subscription is exhausted or expired. It reports whether
// the flag changed so callers persist at most one flip. An already
// inactive subscription never changes.
func (s *Subscription) Evaluate(now time.Time) (entitled bool, flipped bool) {
	if !s.active {
		return false, false
	}
	if s.IsExhausted() || s.IsExpired(now) {
		s.active = false
		s.updatedAt = biztime.NowUTC()
		return false, true
	}
	return true, false
}

// RecordUse consumes one unit of quota. Callers run this under the row
// lock taken for the entitlement check, so the guard here is a final
// consistency check rather than the concurrency control.
func (s *Subscription) RecordUse() error {
	if !s.active {
		return ErrSubscriptionInactive
	}
	if s.IsExhausted() {
		return ErrQuotaExhausted
	}
	s.usedCount++
	s.updatedAt = biztime.NowUTC()
	return nil
}

// ClearAgent detaches the subscription from a deleted agent account.
func (s *Subscription) ClearAgent() {
	s.agentID = nil
	s.updatedAt = biztime.NowUTC()
}
