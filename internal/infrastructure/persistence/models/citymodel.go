package models

import (
	"time"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// CityModel is the persistence model for the city catalog.
type CityModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CityModel) TableName() string {
	return constants.TableCities
}
