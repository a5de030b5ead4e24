package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/faq"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// FAQRepository implements the FAQ port on gorm.
type FAQRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
	logger logger.Interface
}

func NewFAQRepository(db *gorm.DB, logger logger.Interface) faq.Repository {
	return &FAQRepository{
		db:     db,
		mapper: mappers.NewFAQMapper(),
		logger: logger,
	}
}

func (r *FAQRepository) Create(ctx context.Context, entity *faq.FAQ) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *FAQRepository) Update(ctx context.Context, entity *faq.FAQ) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}

	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, faqID uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Delete(&models.FAQModel{}, faqID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return faq.ErrFAQNotFound
	}

	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, faqID uint) (*faq.FAQ, error) {
	var model models.FAQModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, faqID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FAQRepository) List(ctx context.Context) ([]*faq.FAQ, error) {
	var faqModels []*models.FAQModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&faqModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	return r.mapper.ToEntities(faqModels)
}
