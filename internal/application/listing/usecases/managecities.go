package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// ListCitiesUseCase returns the city catalog for the search form and the
// operator city table.
type ListCitiesUseCase struct {
	cityRepo listing.CityRepository
}

func NewListCitiesUseCase(cityRepo listing.CityRepository) *ListCitiesUseCase {
	return &ListCitiesUseCase{cityRepo: cityRepo}
}

func (uc *ListCitiesUseCase) Execute(ctx context.Context) ([]dto.CityResponse, error) {
	cities, err := uc.cityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return dto.NewCityResponses(cities), nil
}

// CreateCityUseCase adds a city catalog entry.
type CreateCityUseCase struct {
	cityRepo listing.CityRepository
	logger   logger.Interface
}

func NewCreateCityUseCase(cityRepo listing.CityRepository, logger logger.Interface) *CreateCityUseCase {
	return &CreateCityUseCase{cityRepo: cityRepo, logger: logger}
}

func (uc *CreateCityUseCase) Execute(ctx context.Context, name string) (*dto.CityResponse, error) {
	city, err := listing.NewCity(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.cityRepo.Create(ctx, city); err != nil {
		if stderrors.Is(err, listing.ErrCityExists) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("city name already exists")
		}
		uc.logger.Errorw("failed to create city", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	uc.logger.Infow("city created", "city_id", city.ID(), "name", city.Name())
	resp := dto.NewCityResponse(city)
	return &resp, nil
}

// RenameCityUseCase renames a catalog entry; listings referencing it pick
// up the new name on their next read.
type RenameCityUseCase struct {
	cityRepo listing.CityRepository
	logger   logger.Interface
}

func NewRenameCityUseCase(cityRepo listing.CityRepository, logger logger.Interface) *RenameCityUseCase {
	return &RenameCityUseCase{cityRepo: cityRepo, logger: logger}
}

func (uc *RenameCityUseCase) Execute(ctx context.Context, cityID uint, name string) (*dto.CityResponse, error) {
	city, err := uc.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load city: %w", err)
	}
	if city == nil {
		return nil, errors.NewNotFoundError("city not found")
	}

	if err := city.Rename(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.cityRepo.Update(ctx, city); err != nil {
		if stderrors.Is(err, listing.ErrCityExists) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("city name already exists")
		}
		uc.logger.Errorw("failed to rename city", "city_id", cityID, "error", err)
		return nil, fmt.Errorf("failed to rename city: %w", err)
	}

	uc.logger.Infow("city renamed", "city_id", cityID, "name", city.Name())
	resp := dto.NewCityResponse(city)
	return &resp, nil
}

// DeleteCityUseCase removes a catalog entry. Cities still referenced by
// listings are refused rather than orphaning the listings.
type DeleteCityUseCase struct {
	cityRepo listing.CityRepository
	logger   logger.Interface
}

func NewDeleteCityUseCase(cityRepo listing.CityRepository, logger logger.Interface) *DeleteCityUseCase {
	return &DeleteCityUseCase{cityRepo: cityRepo, logger: logger}
}

func (uc *DeleteCityUseCase) Execute(ctx context.Context, cityID uint) error {
	city, err := uc.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return fmt.Errorf("failed to load city: %w", err)
	}
	if city == nil {
		return errors.NewNotFoundError("city not found")
	}

	if err := uc.cityRepo.Delete(ctx, cityID); err != nil {
		if stderrors.Is(err, listing.ErrCityInUse) {
			return errors.NewConflictError("city is referenced by listings")
		}
		uc.logger.Errorw("failed to delete city", "city_id", cityID, "error", err)
		return fmt.Errorf("failed to delete city: %w", err)
	}

	uc.logger.Infow("city deleted", "city_id", cityID, "name", city.Name())
	return nil
}
