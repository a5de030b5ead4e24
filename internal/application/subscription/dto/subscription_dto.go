package dto

import (
	"time"

	"github.com/casaplex/casaplex/internal/domain/subscription"
)

// PlanResponse is the API shape of a subscription plan.
type PlanResponse struct {
	SID          string    `json:"sid"`
	Name         string    `json:"name"`
	ListingQuota uint      `json:"listing_quota"`
	DurationDays uint      `json:"duration_days"`
	Price        uint64    `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPlanResponse maps a plan entity to its API shape.
func NewPlanResponse(p *subscription.Plan) PlanResponse {
	return PlanResponse{
		SID:          p.SID(),
		Name:         p.Name(),
		ListingQuota: p.ListingQuota(),
		DurationDays: p.DurationDays(),
		Price:        p.Price(),
		CreatedAt:    p.CreatedAt(),
	}
}

// NewPlanResponses maps a plan list.
func NewPlanResponses(plans []*subscription.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewPlanResponse(p))
	}
	return out
}

// SubscriptionResponse is the API shape of a purchased subscription.
type SubscriptionResponse struct {
	SID            string    `json:"sid"`
	PlanName       string    `json:"plan_name"`
	PlanPrice      uint64    `json:"plan_price"`
	Quota          uint      `json:"quota"`
	UsedCount      uint      `json:"used_count"`
	RemainingQuota uint      `json:"remaining_quota"`
	ExpiresAt      time.Time `json:"expires_at"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSubscriptionResponse maps a subscription entity to its API shape.
func NewSubscriptionResponse(s *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SID:            s.SID(),
		PlanName:       s.PlanName(),
		PlanPrice:      s.PlanPrice(),
		Quota:          s.Quota(),
		UsedCount:      s.UsedCount(),
		RemainingQuota: s.RemainingQuota(),
		ExpiresAt:      s.ExpiresAt(),
		Active:         s.IsActive(),
		CreatedAt:      s.CreatedAt(),
	}
}

// NewSubscriptionResponses maps a subscription list.
func NewSubscriptionResponses(subs []*subscription.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, NewSubscriptionResponse(s))
	}
	return out
}
