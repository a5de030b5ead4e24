package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// ListingRepository implements the listing repository port on gorm.
type ListingRepository struct {
	db     *gorm.DB
	mapper mappers.ListingMapper
	logger logger.Interface
}

func NewListingRepository(db *gorm.DB, logger logger.Interface) listing.Repository {
	return &ListingRepository{
		db:     db,
		mapper: mappers.NewListingMapper(),
		logger: logger,
	}
}

func (r *ListingRepository) Create(ctx context.Context, entity *listing.Listing) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map listing entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create listing", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create listing: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set listing ID: %w", err)
	}

	r.logger.Infow("listing created", "id", model.ID, "status", model.Status)
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, entity *listing.Listing) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map listing entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update listing", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, listingID uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Delete(&models.ListingModel{}, listingID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return listing.ErrListingNotFound
	}

	r.logger.Infow("listing deleted", "id", listingID)
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, listingID uint) (*listing.Listing, error) {
	var model models.ListingModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, listingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ListingRepository) GetBySID(ctx context.Context, sid string) (*listing.Listing, error) {
	var model models.ListingModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ListingRepository) Latest(ctx context.Context, limit int) ([]*listing.Listing, error) {
	var listingModels []*models.ListingModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("status = ?", publication.StatusPublished.String()).
		Order("created_at DESC").
		Limit(limit).
		Find(&listingModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load latest listings: %w", err)
	}

	return r.mapper.ToEntities(listingModels)
}

func (r *ListingRepository) CountByStatus(ctx context.Context, ownerID uint) (map[publication.Status]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ListingModel{}).
		Select("status, COUNT(*) as count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count listings by status: %w", err)
	}

	counts := make(map[publication.Status]int64, len(rows))
	for _, rw := range rows {
		status, err := publication.ParseStatus(rw.Status)
		if err != nil {
			continue
		}
		counts[status] = rw.Count
	}
	return counts, nil
}

func (r *ListingRepository) Bounds(ctx context.Context) (listing.SearchBounds, error) {
	type row struct {
		MaxPrice uint64
		MaxSize  uint
		MaxRooms uint
	}
	var b row

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ListingModel{}).
		Select("COALESCE(MAX(price), 0) as max_price, COALESCE(MAX(size_m2), 0) as max_size, COALESCE(MAX(rooms), 0) as max_rooms").
		Where("status = ?", publication.StatusPublished.String()).
		Scan(&b).Error
	if err != nil {
		return listing.SearchBounds{}, fmt.Errorf("failed to compute search bounds: %w", err)
	}

	return listing.SearchBounds{MaxPrice: b.MaxPrice, MaxSize: b.MaxSize, MaxRooms: b.MaxRooms}, nil
}

func (r *ListingRepository) ClearOwner(ctx context.Context, ownerID uint) error {
	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ListingModel{}).
		Where("owner_id = ?", ownerID).
		Update("owner_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear listing owner: %w", err)
	}
	return nil
}
