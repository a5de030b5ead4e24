package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// CategoryRepository implements the category catalog port on gorm.
type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
	logger logger.Interface
}

func NewCategoryRepository(db *gorm.DB, logger logger.Interface) article.CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, entity *article.Category) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return article.ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *CategoryRepository) Update(ctx context.Context, entity *article.Category) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return article.ErrCategoryExists
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Exec("DELETE FROM "+constants.TableArticleCategories+" WHERE category_model_id = ?", categoryID).Error; err != nil {
		return fmt.Errorf("failed to detach category from articles: %w", err)
	}

	result := tx.Delete(&models.CategoryModel{}, categoryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return article.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID uint) (*article.Category, error) {
	var model models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []uint) ([]*article.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var categoryModels []*models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Find(&categoryModels, ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return r.mapper.ToEntities(categoryModels)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*article.Category, error) {
	var categoryModels []*models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Order("title ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.mapper.ToEntities(categoryModels)
}
