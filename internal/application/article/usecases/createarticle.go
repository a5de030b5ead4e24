package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/guard"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/services/markdown"
)

type CreateArticleCommand struct {
	ActorID     uint
	Title       string
	Body        string
	ImageURL    string
	CategoryIDs []uint
	// PublishAt is optional; zero means visible as soon as published.
	PublishAt       time.Time
	RequestedStatus string
}

// CreateArticleUseCase creates an article. The markdown body is rendered
// and sanitized here so stored HTML is always safe to serve.
type CreateArticleUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
	agentRepo    agent.Repository
	markdown     markdown.Service
	notifier     SubmissionNotifier
	logger       logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.Repository,
	categoryRepo article.CategoryRepository,
	agentRepo agent.Repository,
	markdown markdown.Service,
	notifier SubmissionNotifier,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		agentRepo:    agentRepo,
		markdown:     markdown,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleResponse, error) {
	actor, err := uc.agentRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if actor == nil {
		return nil, errors.NewUnauthorizedError("agent not found")
	}

	if err := guard.Chain(ctx,
		func(context.Context) error {
			if !actor.IsActive() {
				return errors.NewForbiddenError("account is deactivated")
			}
			return nil
		},
		func(context.Context) error {
			if !actor.IsEmailVerified() {
				return errors.NewForbiddenError("email verification required")
			}
			return nil
		},
	); err != nil {
		return nil, err
	}

	requested := publication.StatusDraft
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

	a, err := article.NewArticle(cmd.ActorID, cmd.Title, cmd.Body, bodyHTML,
		cmd.ImageURL, cmd.CategoryIDs, cmd.PublishAt, requested)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create article", "agent_id", cmd.ActorID, "error", err)
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	uc.logger.Infow("article created",
		"sid", a.SID(),
		"agent_id", cmd.ActorID,
		"status", a.Status())

	if a.Status() == publication.StatusPendingReview {
		if err := uc.notifier.SendSubmissionNotice("article", a.Title(), actor.Name()); err != nil {
			uc.logger.Warnw("submission notice failed", "sid", a.SID(), "error", err)
		}
	}

	resp := dto.NewArticleResponse(a, categories)
	resp.AuthorSID = actor.SID()
	resp.AuthorName = actor.Name()
	return &resp, nil
}
