package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/subscription/dto"
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// GetCurrentSubscriptionUseCase returns the agent's newest subscription
// and their full purchase history.
type GetCurrentSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetCurrentSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *GetCurrentSubscriptionUseCase {
	return &GetCurrentSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

type CurrentSubscriptionResult struct {
	Current *dto.SubscriptionResponse  `json:"current"`
	History []dto.SubscriptionResponse `json:"history"`
}

func (uc *GetCurrentSubscriptionUseCase) Execute(ctx context.Context, agentID uint) (*CurrentSubscriptionResult, error) {
	history, err := uc.subscriptionRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription history: %w", err)
	}

	result := &CurrentSubscriptionResult{
		History: dto.NewSubscriptionResponses(history),
	}
	if len(history) > 0 {
		current := dto.NewSubscriptionResponse(history[0])
		result.Current = &current
	}

	return result, nil
}
