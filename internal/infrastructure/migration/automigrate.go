package migration

import (
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the automigrate strategy manages.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AgentModel{},
		&models.CityModel{},
		&models.ListingModel{},
		&models.CategoryModel{},
		&models.ArticleModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.SiteSettingModel{},
		&models.ContactMessageModel{},
		&models.FAQModel{},
	}
}
