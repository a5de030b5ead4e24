package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// CityRepository implements the city catalog port on gorm.
type CityRepository struct {
	db     *gorm.DB
	mapper mappers.CityMapper
	logger logger.Interface
}

func NewCityRepository(db *gorm.DB, logger logger.Interface) listing.CityRepository {
	return &CityRepository{
		db:     db,
		mapper: mappers.NewCityMapper(),
		logger: logger,
	}
}

func (r *CityRepository) Create(ctx context.Context, entity *listing.City) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return listing.ErrCityExists
		}
		return fmt.Errorf("failed to create city: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *CityRepository) Update(ctx context.Context, entity *listing.City) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return listing.ErrCityExists
		}
		return fmt.Errorf("failed to update city: %w", err)
	}

	return nil
}

// Delete removes a city. Cities referenced by listings cannot be removed.
func (r *CityRepository) Delete(ctx context.Context, cityID uint) error {
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	var refs int64
	if err := tx.Model(&models.ListingModel{}).Where("city_id = ?", cityID).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to count city references: %w", err)
	}
	if refs > 0 {
		return listing.ErrCityInUse
	}

	result := tx.Delete(&models.CityModel{}, cityID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete city: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return listing.ErrCityNotFound
	}

	return nil
}

func (r *CityRepository) GetByID(ctx context.Context, cityID uint) (*listing.City, error) {
	var model models.CityModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, cityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CityRepository) GetByName(ctx context.Context, name string) (*listing.City, error) {
	var model models.CityModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get city by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CityRepository) List(ctx context.Context) ([]*listing.City, error) {
	var cityModels []*models.CityModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&cityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	return r.mapper.ToEntities(cityModels)
}
