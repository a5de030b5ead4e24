package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type SubmitArticleCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	SID       string
}

// SubmitArticleUseCase sends a draft or returned article to the review
// queue and notifies the operator mailbox.
type SubmitArticleUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
	agentRepo    agent.Repository
	notifier     SubmissionNotifier
	logger       logger.Interface
}

func NewSubmitArticleUseCase(
	articleRepo article.Repository,
	categoryRepo article.CategoryRepository,
	agentRepo agent.Repository,
	notifier SubmissionNotifier,
	logger logger.Interface,
) *SubmitArticleUseCase {
	return &SubmitArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		agentRepo:    agentRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *SubmitArticleUseCase) Execute(ctx context.Context, cmd SubmitArticleCommand) (*dto.ArticleResponse, error) {
	a, err := uc.articleRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("article not found")
	}
	if !authorization.CanAccessOwned(cmd.ActorID, cmd.ActorRole, a.AuthorID()) {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := a.Submit(); err != nil {
		if stderrors.Is(err, publication.ErrNotReturned) {
			return nil, errors.NewInvalidStateError("article cannot be submitted from its current state")
		}
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to submit article", "sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to submit article: %w", err)
	}

	uc.logger.Infow("article submitted for review", "sid", a.SID(), "actor_id", cmd.ActorID)

	authorName := ""
	if actor, err := uc.agentRepo.GetByID(ctx, cmd.ActorID); err == nil && actor != nil {
		authorName = actor.Name()
	}
	if err := uc.notifier.SendSubmissionNotice("article", a.Title(), authorName); err != nil {
		uc.logger.Warnw("submission notice failed", "sid", a.SID(), "error", err)
	}

	categories, err := uc.categoryRepo.GetByIDs(ctx, a.CategoryIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	resp := dto.NewArticleResponse(a, categories)
	return &resp, nil
}
