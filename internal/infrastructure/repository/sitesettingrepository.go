package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/setting"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// SiteSettingRepository implements the settings port on gorm.
type SiteSettingRepository struct {
	db     *gorm.DB
	mapper mappers.SiteSettingMapper
	logger logger.Interface
}

func NewSiteSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SiteSettingRepository{
		db:     db,
		mapper: mappers.NewSiteSettingMapper(),
		logger: logger,
	}
}

func (r *SiteSettingRepository) GetActive(ctx context.Context) (*setting.SiteSetting, error) {
	var model models.SiteSettingModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("is_active = ?", true).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active settings: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SiteSettingRepository) Create(ctx context.Context, entity *setting.SiteSetting) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map settings: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set settings ID: %w", err)
	}

	r.logger.Infow("site settings created", "id", model.ID)
	return nil
}

func (r *SiteSettingRepository) Update(ctx context.Context, entity *setting.SiteSetting) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map settings: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	r.logger.Infow("site settings updated", "id", model.ID)
	return nil
}
