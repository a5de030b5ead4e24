package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ListArticlesForReviewCommand struct {
	// Status, when non-empty, narrows the moderation list to one state.
	// Empty defaults to the review queue.
	Status string
	Page   int
}

// ListArticlesForReviewUseCase pages the operator moderation view.
type ListArticlesForReviewUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
}

func NewListArticlesForReviewUseCase(articleRepo article.Repository, categoryRepo article.CategoryRepository) *ListArticlesForReviewUseCase {
	return &ListArticlesForReviewUseCase{articleRepo: articleRepo, categoryRepo: categoryRepo}
}

func (uc *ListArticlesForReviewUseCase) Execute(ctx context.Context, cmd ListArticlesForReviewCommand) (*SearchResult, error) {
	status := publication.StatusPendingReview
	if cmd.Status != "" {
		parsed, err := publication.ParseStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		status = parsed
	}

	pageSize := constants.ArticlePageSize
	vis := article.Visibility{Statuses: []publication.Status{status}}
	articles, total, err := uc.articleRepo.Search(ctx, article.Filter{}, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles for review: %w", err)
	}

	index, err := categoryIndex(ctx, uc.categoryRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}

	return &SearchResult{
		Items:    dto.NewArticleSummaries(articles, index),
		Total:    total,
		Page:     utils.ClampPage(cmd.Page, total, pageSize),
		PageSize: pageSize,
	}, nil
}

// ApproveArticleUseCase publishes an article sitting in the review queue.
// Visibility still waits for the article's publish time.
type ApproveArticleUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewApproveArticleUseCase(articleRepo article.Repository, logger logger.Interface) *ApproveArticleUseCase {
	return &ApproveArticleUseCase{articleRepo: articleRepo, logger: logger}
}

func (uc *ApproveArticleUseCase) Execute(ctx context.Context, sid string) (*dto.ArticleResponse, error) {
	a, err := uc.articleRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := a.Approve(); err != nil {
		if stderrors.Is(err, publication.ErrNotPendingReview) {
			return nil, errors.NewInvalidStateError("article is not pending review")
		}
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to approve article", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to approve article: %w", err)
	}

	uc.logger.Infow("article approved", "sid", sid)
	resp := dto.NewArticleResponse(a, nil)
	return &resp, nil
}

type RejectArticleCommand struct {
	SID  string
	Note string
}

// RejectArticleUseCase returns a pending article to its author with a
// mandatory revision note.
type RejectArticleUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewRejectArticleUseCase(articleRepo article.Repository, logger logger.Interface) *RejectArticleUseCase {
	return &RejectArticleUseCase{articleRepo: articleRepo, logger: logger}
}

func (uc *RejectArticleUseCase) Execute(ctx context.Context, cmd RejectArticleCommand) (*dto.ArticleResponse, error) {
	a, err := uc.articleRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := a.Reject(cmd.Note); err != nil {
		switch {
		case stderrors.Is(err, publication.ErrNotPendingReview):
			return nil, errors.NewInvalidStateError("article is not pending review")
		case stderrors.Is(err, publication.ErrRevisionNoteRequired):
			return nil, errors.NewValidationError("a revision note is required")
		default:
			return nil, errors.NewInvalidStateError(err.Error())
		}
	}

	if err := uc.articleRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to reject article", "sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to reject article: %w", err)
	}

	uc.logger.Infow("article returned for revision", "sid", cmd.SID)
	resp := dto.NewArticleResponse(a, nil)
	return &resp, nil
}
