package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type SearchArticlesCommand struct {
	Filter article.Filter
	Page   int
}

// SearchResult is one page of the article catalog.
type SearchResult struct {
	Items    []dto.ArticleResponse
	Total    int64
	Page     int
	PageSize int
}

// SearchArticlesUseCase runs the public blog search. Only published
// articles whose publish time has passed are visible.
type SearchArticlesUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
}

func NewSearchArticlesUseCase(articleRepo article.Repository, categoryRepo article.CategoryRepository) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{articleRepo: articleRepo, categoryRepo: categoryRepo}
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, cmd SearchArticlesCommand) (*SearchResult, error) {
	pageSize := constants.ArticlePageSize
	vis := article.PublicAt(biztime.NowUTC())
	articles, total, err := uc.articleRepo.Search(ctx, cmd.Filter, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
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

// LatestArticlesUseCase feeds the homepage and sidebar widgets with the
// newest publicly visible articles.
type LatestArticlesUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
}

func NewLatestArticlesUseCase(articleRepo article.Repository, categoryRepo article.CategoryRepository) *LatestArticlesUseCase {
	return &LatestArticlesUseCase{articleRepo: articleRepo, categoryRepo: categoryRepo}
}

func (uc *LatestArticlesUseCase) Execute(ctx context.Context, limit int) ([]dto.ArticleResponse, error) {
	if limit < 1 || limit > constants.ArticlePageSize {
		limit = constants.ArticlePageSize
	}
	articles, err := uc.articleRepo.Latest(ctx, biztime.NowUTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest articles: %w", err)
	}
	index, err := categoryIndex(ctx, uc.categoryRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}
	return dto.NewArticleSummaries(articles, index), nil
}

type ListOwnArticlesCommand struct {
	AuthorID uint
	// Status, when non-empty, narrows the dashboard list to one state.
	Status string
	Page   int
}

// ListOwnArticlesUseCase pages through an agent's own articles in every
// publication state for the dashboard.
type ListOwnArticlesUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
}

func NewListOwnArticlesUseCase(articleRepo article.Repository, categoryRepo article.CategoryRepository) *ListOwnArticlesUseCase {
	return &ListOwnArticlesUseCase{articleRepo: articleRepo, categoryRepo: categoryRepo}
}

func (uc *ListOwnArticlesUseCase) Execute(ctx context.Context, cmd ListOwnArticlesCommand) (*SearchResult, error) {
	var statuses []publication.Status
	if cmd.Status != "" {
		status, err := publication.ParseStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statuses = append(statuses, status)
	}

	pageSize := constants.ArticlePageSize
	vis := article.AuthorVisibility(cmd.AuthorID, statuses...)
	articles, total, err := uc.articleRepo.Search(ctx, article.Filter{}, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list own articles: %w", err)
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

// GetArticleCountsUseCase tallies an author's articles per publication
// state for the dashboard header.
type GetArticleCountsUseCase struct {
	articleRepo article.Repository
}

func NewGetArticleCountsUseCase(articleRepo article.Repository) *GetArticleCountsUseCase {
	return &GetArticleCountsUseCase{articleRepo: articleRepo}
}

// StatusCounts tallies articles per publication state.
type StatusCounts struct {
	Draft         int64 `json:"draft"`
	PendingReview int64 `json:"pending_review"`
	Published     int64 `json:"published"`
	Returned      int64 `json:"returned"`
	Total         int64 `json:"total"`
}

func (uc *GetArticleCountsUseCase) Execute(ctx context.Context, authorID uint) (*StatusCounts, error) {
	counts, err := uc.articleRepo.CountByStatus(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	resp := &StatusCounts{
		Draft:         counts[publication.StatusDraft],
		PendingReview: counts[publication.StatusPendingReview],
		Published:     counts[publication.StatusPublished],
		Returned:      counts[publication.StatusReturned],
	}
	resp.Total = resp.Draft + resp.PendingReview + resp.Published + resp.Returned
	return resp, nil
}
