package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// SiteSettingModel is the persistence model for site-wide presentation
// settings. A single active row holds the live configuration.
type SiteSettingModel struct {
	ID         uint   `gorm:"primarykey"`
	SiteName   string `gorm:"not null;size:100"`
	LogoURL    string `gorm:"size:500"`
	FooterLogo string `gorm:"size:500"`
	HeroTitle  string `gorm:"size:255"`
	HeroText   string `gorm:"type:text"`
	AboutText  string `gorm:"type:text"`
	Contact    datatypes.JSON
	Social     datatypes.JSON
	IsActive   bool `gorm:"default:true;index:idx_site_settings_active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SiteSettingModel) TableName() string {
	return constants.TableSiteSettings
}
