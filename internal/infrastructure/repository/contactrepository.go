package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/contact"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// ContactRepository implements the contact message port on gorm.
type ContactRepository struct {
	db     *gorm.DB
	mapper mappers.ContactMessageMapper
	logger logger.Interface
}

func NewContactRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepository{
		db:     db,
		mapper: mappers.NewContactMessageMapper(),
		logger: logger,
	}
}

func (r *ContactRepository) Create(ctx context.Context, entity *contact.Message) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set message ID: %w", err)
	}

	r.logger.Infow("contact message received", "id", model.ID, "subject", model.Subject)
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, entity *contact.Message) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update contact message: %w", err)
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, messageID uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Delete(&models.ContactMessageModel{}, messageID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.ErrMessageNotFound
	}

	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, messageID uint) (*contact.Message, error) {
	var model models.ContactMessageModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, messageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ContactRepository) List(ctx context.Context, unreviewedOnly bool, page, pageSize int) ([]*contact.Message, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.ContactMessageModel{})

	if unreviewedOnly {
		query = query.Where("reviewed = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	page = utils.ClampPage(page, total, pageSize)
	offset := (page - 1) * pageSize

	var messageModels []*models.ContactMessageModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&messageModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	entities, err := r.mapper.ToEntities(messageModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
