package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

type mockArticleRepository struct {
	mock.Mock
}

func (m *mockArticleRepository) Create(ctx context.Context, a *article.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockArticleRepository) Update(ctx context.Context, a *article.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockArticleRepository) Delete(ctx context.Context, articleID uint) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

func (m *mockArticleRepository) GetByID(ctx context.Context, articleID uint) (*article.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*article.Article), args.Error(1)
}

func (m *mockArticleRepository) GetBySID(ctx context.Context, sid string) (*article.Article, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*article.Article), args.Error(1)
}

func (m *mockArticleRepository) Search(ctx context.Context, filter article.Filter, vis article.Visibility, page, pageSize int) ([]*article.Article, int64, error) {
	args := m.Called(ctx, filter, vis, page, pageSize)
	var articles []*article.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]*article.Article)
	}
	return articles, args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleRepository) Latest(ctx context.Context, now time.Time, limit int) ([]*article.Article, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*article.Article), args.Error(1)
}

func (m *mockArticleRepository) CountByStatus(ctx context.Context, authorID uint) (map[publication.Status]int64, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[publication.Status]int64), args.Error(1)
}

func (m *mockArticleRepository) ClearAuthor(ctx context.Context, authorID uint) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *article.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *article.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*article.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*article.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetByIDs(ctx context.Context, ids []uint) ([]*article.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*article.Category), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*article.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*article.Category), args.Error(1)
}

type mockAgentRepository struct {
	mock.Mock
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAgentRepository) Delete(ctx context.Context, agentID uint) error {
	args := m.Called(ctx, agentID)
	return args.Error(0)
}

func (m *mockAgentRepository) GetByID(ctx context.Context, agentID uint) (*agent.Agent, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *mockAgentRepository) GetBySID(ctx context.Context, sid string) (*agent.Agent, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *mockAgentRepository) GetByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *mockAgentRepository) List(ctx context.Context, filter agent.DirectoryFilter) ([]*agent.Agent, int64, error) {
	args := m.Called(ctx, filter)
	var agents []*agent.Agent
	if args.Get(0) != nil {
		agents = args.Get(0).([]*agent.Agent)
	}
	return agents, args.Get(1).(int64), args.Error(2)
}

func testAuthor(t *testing.T, id uint, active bool) *agent.Agent {
	t.Helper()
	a, err := agent.Reconstruct(agent.ReconstructParams{
		ID:            id,
		SID:           "agt_author",
		Name:          "Dana Tester",
		Email:         "dana@example.com",
		PasswordHash:  "x",
		Role:          authorization.RoleAgent,
		Active:        active,
		EmailVerified: true,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	return a
}

func testPublishedArticle(t *testing.T, authorID uint) *article.Article {
	t.Helper()
	a, err := article.Reconstruct(article.ReconstructParams{
		ID:        5,
		SID:       "art_profile",
		AuthorID:  &authorID,
		Title:     "Pricing a rental in a slow market",
		Body:      "body",
		BodyHTML:  "<p>body</p>",
		PublishAt: time.Now().UTC().Add(-time.Hour),
		Status:    publication.StatusPublished,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return a
}

func TestArticlesByAuthor_UnknownAgent(t *testing.T) {
	articleRepo := new(mockArticleRepository)
	categoryRepo := new(mockCategoryRepository)
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetBySID", mock.Anything, "agt_missing").Return(nil, nil)

	uc := NewArticlesByAuthorUseCase(articleRepo, categoryRepo, agentRepo)

	_, err := uc.Execute(context.Background(), ArticlesByAuthorCommand{AgentSID: "agt_missing", Page: 1})

	assert.True(t, errors.IsNotFoundError(err))
	articleRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestArticlesByAuthor_DeactivatedAgentReadsAsMissing(t *testing.T) {
	articleRepo := new(mockArticleRepository)
	categoryRepo := new(mockCategoryRepository)
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetBySID", mock.Anything, "agt_author").Return(testAuthor(t, 3, false), nil)

	uc := NewArticlesByAuthorUseCase(articleRepo, categoryRepo, agentRepo)

	_, err := uc.Execute(context.Background(), ArticlesByAuthorCommand{AgentSID: "agt_author", Page: 1})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestArticlesByAuthor_HidesDraftsAndFutureDatedPosts(t *testing.T) {
	const authorID uint = 3
	published := testPublishedArticle(t, authorID)

	articleRepo := new(mockArticleRepository)
	categoryRepo := new(mockCategoryRepository)
	agentRepo := new(mockAgentRepository)

	agentRepo.On("GetBySID", mock.Anything, "agt_author").Return(testAuthor(t, authorID, true), nil)
	articleRepo.On("Search", mock.Anything, article.Filter{}, mock.MatchedBy(func(vis article.Visibility) bool {
		return vis.AuthorID != nil && *vis.AuthorID == authorID &&
			len(vis.Statuses) == 1 && vis.Statuses[0] == publication.StatusPublished &&
			vis.PublishedBefore != nil
	}), 1, mock.Anything).Return([]*article.Article{published}, int64(1), nil)
	categoryRepo.On("List", mock.Anything).Return([]*article.Category{}, nil)

	uc := NewArticlesByAuthorUseCase(articleRepo, categoryRepo, agentRepo)

	result, err := uc.Execute(context.Background(), ArticlesByAuthorCommand{AgentSID: "agt_author", Page: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, published.SID(), result.Items[0].SID)
	articleRepo.AssertExpectations(t)
}
