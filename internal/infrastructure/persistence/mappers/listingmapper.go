package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
)

// ListingMapper converts between listing domain entities and persistence
// models.
type ListingMapper interface {
	ToEntity(model *models.ListingModel) (*listing.Listing, error)
	ToModel(entity *listing.Listing) (*models.ListingModel, error)
	ToEntities(models []*models.ListingModel) ([]*listing.Listing, error)
}

type ListingMapperImpl struct{}

func NewListingMapper() ListingMapper {
	return &ListingMapperImpl{}
}

func (m *ListingMapperImpl) ToEntity(model *models.ListingModel) (*listing.Listing, error) {
	if model == nil {
		return nil, nil
	}

	status, err := publication.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("listing %d: %w", model.ID, err)
	}

	dealType, err := listing.ParseDealType(model.DealType)
	if err != nil {
		return nil, fmt.Errorf("listing %d: %w", model.ID, err)
	}

	var gallery []string
	if len(model.Gallery) > 0 {
		if err := json.Unmarshal(model.Gallery, &gallery); err != nil {
			return nil, fmt.Errorf("failed to decode gallery: %w", err)
		}
	}

	return listing.Reconstruct(listing.ReconstructParams{
		ID:          model.ID,
		SID:         model.SID,
		OwnerID:     model.OwnerID,
		CityID:      model.CityID,
		Title:       model.Title,
		Description: model.Description,
		DealType:    dealType,
		Price:       model.Price,
		MonthlyRent: model.MonthlyRent,
		Attrs: listing.Attributes{
			SizeM2:    model.SizeM2,
			Rooms:     model.Rooms,
			BuildYear: model.BuildYear,
			Floor:     model.Floor,
			Elevator:  model.Elevator,
			Parking:   model.Parking,
			Storeroom: model.Storeroom,
		},
		ImageURL:     model.ImageURL,
		Gallery:      gallery,
		Status:       status,
		RevisionNote: model.RevisionNote,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func (m *ListingMapperImpl) ToModel(entity *listing.Listing) (*models.ListingModel, error) {
	if entity == nil {
		return nil, nil
	}

	var gallery []byte
	if entity.Gallery() != nil {
		encoded, err := json.Marshal(entity.Gallery())
		if err != nil {
			return nil, fmt.Errorf("failed to encode gallery: %w", err)
		}
		gallery = encoded
	}

	attrs := entity.Attrs()
	return &models.ListingModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		OwnerID:      entity.OwnerID(),
		CityID:       entity.CityID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		DealType:     string(entity.DealType()),
		Price:        entity.Price(),
		MonthlyRent:  entity.MonthlyRent(),
		SizeM2:       attrs.SizeM2,
		Rooms:        attrs.Rooms,
		BuildYear:    attrs.BuildYear,
		Floor:        attrs.Floor,
		Elevator:     attrs.Elevator,
		Parking:      attrs.Parking,
		Storeroom:    attrs.Storeroom,
		ImageURL:     entity.ImageURL(),
		Gallery:      gallery,
		Status:       entity.Status().String(),
		RevisionNote: entity.RevisionNote(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *ListingMapperImpl) ToEntities(listingModels []*models.ListingModel) ([]*listing.Listing, error) {
	entities := make([]*listing.Listing, 0, len(listingModels))
	for _, model := range listingModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// CityMapper converts between city entities and persistence models.
type CityMapper interface {
	ToEntity(model *models.CityModel) (*listing.City, error)
	ToModel(entity *listing.City) *models.CityModel
	ToEntities(models []*models.CityModel) ([]*listing.City, error)
}

type CityMapperImpl struct{}

func NewCityMapper() CityMapper {
	return &CityMapperImpl{}
}

func (m *CityMapperImpl) ToEntity(model *models.CityModel) (*listing.City, error) {
	if model == nil {
		return nil, nil
	}
	return listing.ReconstructCity(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *CityMapperImpl) ToModel(entity *listing.City) *models.CityModel {
	if entity == nil {
		return nil
	}
	return &models.CityModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *CityMapperImpl) ToEntities(cityModels []*models.CityModel) ([]*listing.City, error) {
	entities := make([]*listing.City, 0, len(cityModels))
	for _, model := range cityModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
