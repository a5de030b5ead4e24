package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// ListingModel is the persistence model for property listings.
type ListingModel struct {
	ID          uint    `gorm:"primarykey"`
	SID         string  `gorm:"column:sid;uniqueIndex;not null;size:32"`
	OwnerID     *uint   `gorm:"index:idx_listings_owner"`
	CityID      uint    `gorm:"index:idx_listings_city;not null"`
	Title       string  `gorm:"not null;size:255"`
	Description string  `gorm:"type:text"`
	DealType    string  `gorm:"not null;size:10;index:idx_listings_deal"`
	Price       uint64  `gorm:"not null;default:0"`
	MonthlyRent *uint64 `gorm:""`
	SizeM2      uint    `gorm:"default:0"`
	Rooms       uint    `gorm:"default:0"`
	BuildYear   uint    `gorm:"default:0"`
	Floor       int     `gorm:"default:0"`
	Elevator    bool    `gorm:"default:false"`
	Parking     bool    `gorm:"default:false"`
	Storeroom   bool    `gorm:"default:false"`
	ImageURL    string  `gorm:"size:500"`
	Gallery     datatypes.JSON
	Status      string `gorm:"not null;default:draft;size:20;index:idx_listings_status"`
	RevisionNote string `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index:idx_listings_created"`
	UpdatedAt   time.Time

	Owner *AgentModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	City  *CityModel  `gorm:"foreignKey:CityID"`
}

func (ListingModel) TableName() string {
	return constants.TableListings
}
