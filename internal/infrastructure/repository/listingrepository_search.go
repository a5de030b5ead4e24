package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// Search runs the catalog query: visibility scope first, then free text,
// numeric ranges, exact matches and amenity flags, newest first. The page
// is clamped against the filtered total, never an error.
func (r *ListingRepository) Search(ctx context.Context, filter listing.Filter, vis listing.Visibility, page, pageSize int) ([]*listing.Listing, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.ListingModel{})
	query = r.applyVisibility(query, vis)
	query = r.applyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	page = utils.ClampPage(page, total, pageSize)
	offset := (page - 1) * pageSize

	var listingModels []*models.ListingModel
	err := query.
		Order(constants.TableListings + ".created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&listingModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search listings: %w", err)
	}

	entities, err := r.mapper.ToEntities(listingModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *ListingRepository) applyVisibility(query *gorm.DB, vis listing.Visibility) *gorm.DB {
	if len(vis.Statuses) > 0 {
		statuses := make([]string, 0, len(vis.Statuses))
		for _, s := range vis.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where(constants.TableListings+".status IN ?", statuses)
	}
	if vis.OwnerID != nil {
		query = query.Where(constants.TableListings+".owner_id = ?", *vis.OwnerID)
	}
	return query
}

func (r *ListingRepository) applyFilter(query *gorm.DB, filter listing.Filter) *gorm.DB {
	if search := utils.NormalizeSearchText(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN "+constants.TableAgents+" ON "+constants.TableAgents+".id = "+constants.TableListings+".owner_id").
			Where("LOWER("+constants.TableListings+".title) LIKE ? OR LOWER("+constants.TableListings+".description) LIKE ? OR LOWER("+constants.TableAgents+".name) LIKE ?",
				pattern, pattern, pattern)
	}

	if filter.PriceMin != nil {
		query = query.Where(constants.TableListings+".price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where(constants.TableListings+".price <= ?", *filter.PriceMax)
	}
	if filter.SizeMin != nil {
		query = query.Where("size_m2 >= ?", *filter.SizeMin)
	}
	if filter.SizeMax != nil {
		query = query.Where("size_m2 <= ?", *filter.SizeMax)
	}
	if filter.RoomsMin != nil {
		query = query.Where("rooms >= ?", *filter.RoomsMin)
	}
	if filter.RoomsMax != nil {
		query = query.Where("rooms <= ?", *filter.RoomsMax)
	}
	if filter.YearMin != nil {
		query = query.Where("build_year >= ?", *filter.YearMin)
	}
	if filter.YearMax != nil {
		query = query.Where("build_year <= ?", *filter.YearMax)
	}

	if filter.CityID != nil {
		query = query.Where("city_id = ?", *filter.CityID)
	}
	if filter.DealType != nil {
		query = query.Where("deal_type = ?", string(*filter.DealType))
	}

	if filter.Elevator != nil {
		query = query.Where("elevator = ?", *filter.Elevator)
	}
	if filter.Parking != nil {
		query = query.Where("parking = ?", *filter.Parking)
	}
	if filter.Storeroom != nil {
		query = query.Where("storeroom = ?", *filter.Storeroom)
	}

	return query
}
