package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// AgentModel is the persistence model for agent accounts.
// This is the anti-corruption layer between domain and database.
type AgentModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	Name          string `gorm:"not null;size:100"`
	Email         string `gorm:"uniqueIndex;not null;size:255"`
	Phone         string `gorm:"size:32"`
	PasswordHash  string `gorm:"not null;size:255"`
	Description   string `gorm:"type:text"`
	AvatarURL     string `gorm:"size:500"`
	SocialLinks   datatypes.JSON
	Role          string `gorm:"not null;default:agent;size:20"`
	Active        bool   `gorm:"default:true;index:idx_agents_active"`
	EmailVerified bool   `gorm:"default:false"`
	VerifyCode    string `gorm:"size:16"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AgentModel) TableName() string {
	return constants.TableAgents
}
