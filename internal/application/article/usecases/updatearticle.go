package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/services/markdown"
)

type UpdateArticleCommand struct {
	ActorID         uint
	ActorRole       authorization.Role
	SID             string
	Title           string
	Body            string
	ImageURL        string
	CategoryIDs     []uint
	PublishAt       time.Time
	RequestedStatus string
}

// UpdateArticleUseCase applies a content edit and re-renders the body.
// Authors follow the workflow freeze rules; operators edit through the
// freeze, but a published article drops back to draft for either role.
type UpdateArticleUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
	agentRepo    agent.Repository
	markdown     markdown.Service
	notifier     SubmissionNotifier
	logger       logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo article.Repository,
	categoryRepo article.CategoryRepository,
	agentRepo agent.Repository,
	markdown markdown.Service,
	notifier SubmissionNotifier,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		agentRepo:    agentRepo,
		markdown:     markdown,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleResponse, error) {
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

	requested := a.Status()
	if cmd.RequestedStatus != "" {
		requested, err = publication.ParseStatus(cmd.RequestedStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	categories, err := resolveCategories(ctx, uc.categoryRepo, cmd.CategoryIDs)
	if err != nil {
		return nil, err
	}

	bodyHTML, err := uc.markdown.ToHTMLSanitized(cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError("body could not be rendered")
	}

	prevStatus := a.Status()
	asOwner := !cmd.ActorRole.IsOperator()
	if err := a.Update(cmd.Title, cmd.Body, bodyHTML, cmd.ImageURL,
		cmd.CategoryIDs, cmd.PublishAt, requested, asOwner); err != nil {
		if stderrors.Is(err, publication.ErrFrozenUnderReview) {
			return nil, errors.NewInvalidStateError("article is under review and cannot be edited")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update article", "sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	uc.logger.Infow("article updated",
		"sid", a.SID(),
		"actor_id", cmd.ActorID,
		"status", a.Status())

	if a.Status() == publication.StatusPendingReview && prevStatus != publication.StatusPendingReview {
		authorName := ""
		if authorID := a.AuthorID(); authorID != nil {
			if author, err := uc.agentRepo.GetByID(ctx, *authorID); err == nil && author != nil {
				authorName = author.Name()
			}
		}
		if err := uc.notifier.SendSubmissionNotice("article", a.Title(), authorName); err != nil {
			uc.logger.Warnw("submission notice failed", "sid", a.SID(), "error", err)
		}
	}

	resp := dto.NewArticleResponse(a, categories)
	return &resp, nil
}
