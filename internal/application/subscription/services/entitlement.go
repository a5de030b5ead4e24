// Package services holds the subscription ledger operations shared by the
// listing workflow and the subscription API.
package services

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// EntitlementService evaluates and consumes listing quota. The active flag
// on a subscription only ever changes inside this service.
type EntitlementService struct {
	subscriptionRepo subscription.Repository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewEntitlementService(
	subscriptionRepo subscription.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *EntitlementService {
	return &EntitlementService{
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// IsEntitled reports whether the agent may create a listing right now.
// The first evaluation that observes an exhausted or expired subscription
// persists the active flag flip; later calls see the flag already down
// and change nothing.
func (s *EntitlementService) IsEntitled(ctx context.Context, agentID uint) (bool, error) {
	current, err := s.subscriptionRepo.GetCurrent(ctx, agentID)
	if err != nil {
		return false, fmt.Errorf("failed to load current subscription: %w", err)
	}
	if current == nil {
		return false, nil
	}

	entitled, flipped := current.Evaluate(biztime.NowUTC())
	if flipped {
		if err := s.subscriptionRepo.Update(ctx, current); err != nil {
			return false, fmt.Errorf("failed to persist subscription deactivation: %w", err)
		}
		s.logger.Infow("subscription deactivated",
			"subscription_id", current.ID(),
			"agent_id", agentID,
			"used", current.UsedCount(),
			"quota", current.Quota())
	}

	return entitled, nil
}

// ConsumeQuota re-checks entitlement under a row lock and increments the
// quota counter. Callers run it inside the same transaction that creates
// the listing, so the check and the increment are atomic and the quota
// can never overrun under concurrent creations.
func (s *EntitlementService) ConsumeQuota(ctx context.Context, agentID uint) error {
	current, err := s.subscriptionRepo.GetCurrentForUpdate(ctx, agentID)
	if err != nil {
		return fmt.Errorf("failed to lock current subscription: %w", err)
	}
	if current == nil {
		return subscription.ErrNoSubscription
	}

	entitled, flipped := current.Evaluate(biztime.NowUTC())
	if !entitled {
		if flipped {
			if err := s.subscriptionRepo.Update(ctx, current); err != nil {
				return fmt.Errorf("failed to persist subscription deactivation: %w", err)
			}
		}
		return subscription.ErrSubscriptionInactive
	}

	if err := current.RecordUse(); err != nil {
		return err
	}

	if err := s.subscriptionRepo.Update(ctx, current); err != nil {
		return fmt.Errorf("failed to persist quota use: %w", err)
	}

	s.logger.Infow("listing quota consumed",
		"subscription_id", current.ID(),
		"agent_id", agentID,
		"used", current.UsedCount(),
		"quota", current.Quota())
	return nil
}
