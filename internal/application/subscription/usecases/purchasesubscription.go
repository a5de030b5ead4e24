package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/subscription/dto"
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type PurchaseSubscriptionCommand struct {
	AgentID uint
	PlanSID string
}

// PurchaseSubscriptionUseCase snapshots a plan into a new subscription.
// Purchase always succeeds regardless of any prior subscription; it never
// touches earlier rows.
type PurchaseSubscriptionUseCase struct {
	planRepo         subscription.PlanRepository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewPurchaseSubscriptionUseCase(
	planRepo subscription.PlanRepository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *PurchaseSubscriptionUseCase {
	return &PurchaseSubscriptionUseCase{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *PurchaseSubscriptionUseCase) Execute(ctx context.Context, cmd PurchaseSubscriptionCommand) (*dto.SubscriptionResponse, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	sub, err := subscription.NewSubscription(cmd.AgentID, plan)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "agent_id", cmd.AgentID, "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("subscription purchased",
		"agent_id", cmd.AgentID,
		"plan", plan.Name(),
		"expires_at", sub.ExpiresAt())

	resp := dto.NewSubscriptionResponse(sub)
	return &resp, nil
}
