package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	SID       string
}

// DeleteArticleUseCase removes an article and its category attachments.
type DeleteArticleUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(articleRepo article.Repository, logger logger.Interface) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{articleRepo: articleRepo, logger: logger}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	a, err := uc.articleRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return fmt.Errorf("failed to load article: %w", err)
	}
	if a == nil {
		return errors.NewNotFoundError("article not found")
	}
	if !authorization.CanAccessOwned(cmd.ActorID, cmd.ActorRole, a.AuthorID()) {
		return errors.NewNotFoundError("article not found")
	}

	if err := uc.articleRepo.Delete(ctx, a.ID()); err != nil {
		uc.logger.Errorw("failed to delete article", "sid", cmd.SID, "error", err)
		return fmt.Errorf("failed to delete article: %w", err)
	}

	uc.logger.Infow("article deleted", "sid", cmd.SID, "actor_id", cmd.ActorID)
	return nil
}
