package models

import (
	"time"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// ContactMessageModel is the persistence model for contact submissions.
type ContactMessageModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Email     string `gorm:"not null;size:255"`
	Phone     string `gorm:"size:32"`
	Subject   string `gorm:"size:255"`
	Body      string `gorm:"type:text;not null"`
	Reviewed  bool   `gorm:"default:false;index:idx_contact_reviewed"`
	CreatedAt time.Time `gorm:"index:idx_contact_created"`
	UpdatedAt time.Time
}

func (ContactMessageModel) TableName() string {
	return constants.TableContactMessages
}

// FAQModel is the persistence model for FAQ entries.
type FAQModel struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"not null;size:255"`
	Answer    string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQModel) TableName() string {
	return constants.TableFAQs
}
