package mappers

import (
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
)

// ArticleMapper converts between article domain entities and persistence
// models.
type ArticleMapper interface {
	ToEntity(model *models.ArticleModel) (*article.Article, error)
	ToModel(entity *article.Article) (*models.ArticleModel, error)
	ToEntities(models []*models.ArticleModel) ([]*article.Article, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToEntity(model *models.ArticleModel) (*article.Article, error) {
	if model == nil {
		return nil, nil
	}

	status, err := publication.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("article %d: %w", model.ID, err)
	}

	categoryIDs := make([]uint, 0, len(model.Categories))
	for _, c := range model.Categories {
		categoryIDs = append(categoryIDs, c.ID)
	}

	return article.Reconstruct(article.ReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		AuthorID:     model.AuthorID,
		Title:        model.Title,
		Body:         model.Body,
		BodyHTML:     model.BodyHTML,
		ImageURL:     model.ImageURL,
		CategoryIDs:  categoryIDs,
		PublishAt:    model.PublishAt,
		Status:       status,
		RevisionNote: model.RevisionNote,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

// ToModel converts an entity to a model. Category associations are handled
// separately by the repository since gorm manages the join table.
func (m *ArticleMapperImpl) ToModel(entity *article.Article) (*models.ArticleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ArticleModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		AuthorID:     entity.AuthorID(),
		Title:        entity.Title(),
		Body:         entity.Body(),
		BodyHTML:     entity.BodyHTML(),
		ImageURL:     entity.ImageURL(),
		Status:       entity.Status().String(),
		RevisionNote: entity.RevisionNote(),
		PublishAt:    entity.PublishAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *ArticleMapperImpl) ToEntities(articleModels []*models.ArticleModel) ([]*article.Article, error) {
	entities := make([]*article.Article, 0, len(articleModels))
	for _, model := range articleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// CategoryMapper converts between category entities and persistence models.
type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*article.Category, error)
	ToModel(entity *article.Category) *models.CategoryModel
	ToEntities(models []*models.CategoryModel) ([]*article.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*article.Category, error) {
	if model == nil {
		return nil, nil
	}
	return article.ReconstructCategory(model.ID, model.Title, model.CreatedAt, model.UpdatedAt)
}

func (m *CategoryMapperImpl) ToModel(entity *article.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *CategoryMapperImpl) ToEntities(categoryModels []*models.CategoryModel) ([]*article.Category, error) {
	entities := make([]*article.Category, 0, len(categoryModels))
	for _, model := range categoryModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
