package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/article/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

type GetArticleCommand struct {
	// ActorID is zero for anonymous callers.
	ActorID   uint
	ActorRole authorization.Role
	SID       string
}

// GetArticleUseCase loads one article for the detail page. Unpublished and
// future-dated articles are visible only to their author and to operators;
// everyone else gets a not-found.
type GetArticleUseCase struct {
	articleRepo  article.Repository
	categoryRepo article.CategoryRepository
	agentRepo    agent.Repository
}

func NewGetArticleUseCase(
	articleRepo article.Repository,
	categoryRepo article.CategoryRepository,
	agentRepo agent.Repository,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		agentRepo:    agentRepo,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, cmd GetArticleCommand) (*dto.ArticleResponse, error) {
	a, err := uc.articleRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("article not found")
	}
	if !a.IsVisibleAt(biztime.NowUTC()) && !authorization.CanAccessOwned(cmd.ActorID, cmd.ActorRole, a.AuthorID()) {
		return nil, errors.NewNotFoundError("article not found")
	}

	categories, err := uc.categoryRepo.GetByIDs(ctx, a.CategoryIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	resp := dto.NewArticleResponse(a, categories)
	if authorID := a.AuthorID(); authorID != nil {
		author, err := uc.agentRepo.GetByID(ctx, *authorID)
		if err == nil && author != nil {
			resp.AuthorSID = author.SID()
			resp.AuthorName = author.Name()
		}
	}
	return &resp, nil
}
