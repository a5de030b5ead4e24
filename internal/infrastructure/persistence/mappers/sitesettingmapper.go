package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/setting"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
)

// SiteSettingMapper converts between setting entities and persistence
// models.
type SiteSettingMapper interface {
	ToEntity(model *models.SiteSettingModel) (*setting.SiteSetting, error)
	ToModel(entity *setting.SiteSetting) (*models.SiteSettingModel, error)
}

type SiteSettingMapperImpl struct{}

func NewSiteSettingMapper() SiteSettingMapper {
	return &SiteSettingMapperImpl{}
}

func (m *SiteSettingMapperImpl) ToEntity(model *models.SiteSettingModel) (*setting.SiteSetting, error) {
	if model == nil {
		return nil, nil
	}

	var contact setting.ContactInfo
	if len(model.Contact) > 0 {
		if err := json.Unmarshal(model.Contact, &contact); err != nil {
			return nil, fmt.Errorf("failed to decode contact info: %w", err)
		}
	}

	var social setting.SocialLinks
	if len(model.Social) > 0 {
		if err := json.Unmarshal(model.Social, &social); err != nil {
			return nil, fmt.Errorf("failed to decode social links: %w", err)
		}
	}

	return setting.Reconstruct(setting.ReconstructParams{
		ID:         model.ID,
		SiteName:   model.SiteName,
		LogoURL:    model.LogoURL,
		FooterLogo: model.FooterLogo,
		HeroTitle:  model.HeroTitle,
		HeroText:   model.HeroText,
		AboutText:  model.AboutText,
		Contact:    contact,
		Social:     social,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
}

func (m *SiteSettingMapperImpl) ToModel(entity *setting.SiteSetting) (*models.SiteSettingModel, error) {
	if entity == nil {
		return nil, nil
	}

	contact, err := json.Marshal(entity.Contact())
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact info: %w", err)
	}

	social, err := json.Marshal(entity.Social())
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	return &models.SiteSettingModel{
		ID:         entity.ID(),
		SiteName:   entity.SiteName(),
		LogoURL:    entity.LogoURL(),
		FooterLogo: entity.FooterLogo(),
		HeroTitle:  entity.HeroTitle(),
		HeroText:   entity.HeroText(),
		AboutText:  entity.AboutText(),
		Contact:    contact,
		Social:     social,
		IsActive:   true,
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}
