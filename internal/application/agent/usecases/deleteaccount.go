package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// DeleteAccountUseCase removes an agent account. Owned listings, articles
// and subscription rows survive with their agent reference cleared, so
// published content and the purchase ledger outlive the account.
type DeleteAccountUseCase struct {
	agentRepo        agent.Repository
	listingRepo      listing.Repository
	articleRepo      article.Repository
	subscriptionRepo subscription.Repository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewDeleteAccountUseCase(
	agentRepo agent.Repository,
	listingRepo listing.Repository,
	articleRepo article.Repository,
	subscriptionRepo subscription.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		agentRepo:        agentRepo,
		listingRepo:      listingRepo,
		articleRepo:      articleRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, agentID uint) error {
	a, err := uc.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return errors.NewNotFoundError("agent not found")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.listingRepo.ClearOwner(txCtx, agentID); err != nil {
			return fmt.Errorf("failed to detach listings: %w", err)
		}
		if err := uc.articleRepo.ClearAuthor(txCtx, agentID); err != nil {
			return fmt.Errorf("failed to detach articles: %w", err)
		}
		if err := uc.subscriptionRepo.ClearAgent(txCtx, agentID); err != nil {
			return fmt.Errorf("failed to detach subscriptions: %w", err)
		}
		if err := uc.agentRepo.Delete(txCtx, agentID); err != nil {
			return fmt.Errorf("failed to delete agent: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("account deletion failed", "sid", a.SID(), "error", err)
		return err
	}

	uc.logger.Infow("account deleted", "sid", a.SID())
	return nil
}
