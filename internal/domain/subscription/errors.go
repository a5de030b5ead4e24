package subscription

import "errors"

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrNoSubscription       = errors.New("no subscription on record")
	ErrSubscriptionInactive = errors.New("subscription is inactive")
	ErrQuotaExhausted       = errors.New("listing quota exhausted")
)
