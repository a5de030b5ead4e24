package models

import (
	"time"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// PlanModel is the persistence model for the subscription plan catalog.
type PlanModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	Name         string `gorm:"not null;size:100"`
	ListingQuota uint   `gorm:"not null"`
	DurationDays uint   `gorm:"not null"`
	Price        uint64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}

// SubscriptionModel is the persistence model for purchased subscriptions.
// Plan terms are snapshotted at purchase; there is no plan foreign key.
type SubscriptionModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	AgentID   *uint  `gorm:"index:idx_subscriptions_agent"`
	PlanName  string `gorm:"not null;size:100"`
	PlanPrice uint64 `gorm:"not null;default:0"`
	Quota     uint   `gorm:"not null"`
	UsedCount uint   `gorm:"not null;default:0"`
	ExpiresAt time.Time
	Active    bool `gorm:"default:true;index:idx_subscriptions_active"`
	CreatedAt time.Time `gorm:"index:idx_subscriptions_created"`
	UpdatedAt time.Time

	Agent *AgentModel `gorm:"foreignKey:AgentID;constraint:OnDelete:SET NULL"`
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
