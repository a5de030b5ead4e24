package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ArticlesByAuthorCommand struct {
	AgentSID string
	Page     int
}

// ArticlesByAuthorUseCase pages one agent's publicly visible articles for
// their profile page. Future-dated posts stay hidden here just like in the
// main blog search.
type ArticlesByAuthorUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
	agentRepo    agent.Repository
}

func NewArticlesByAuthorUseCase(
	articleRepo article.Repository,
	categoryRepo article.CategoryRepository,
	agentRepo agent.Repository,
) *ArticlesByAuthorUseCase {
	return &ArticlesByAuthorUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		agentRepo:    agentRepo,
	}
}

func (uc *ArticlesByAuthorUseCase) Execute(ctx context.Context, cmd ArticlesByAuthorCommand) (*SearchResult, error) {
	a, err := uc.agentRepo.GetBySID(ctx, cmd.AgentSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil || !a.IsActive() {
		return nil, errors.NewNotFoundError("agent not found")
	}

	now := biztime.NowUTC()
	vis := article.AuthorVisibility(a.ID(), publication.StatusPublished)
	vis.PublishedBefore = &now

	pageSize := constants.ArticlePageSize
	articles, total, err := uc.articleRepo.Search(ctx, article.Filter{}, vis, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list author articles: %w", err)
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
