// Package seeds loads initial catalog data from the embedded YAML file.
package seeds

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/id"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

//go:embed seed_data.yaml
var seedData []byte

type seedFile struct {
	Cities     []string `yaml:"cities"`
	Categories []string `yaml:"categories"`
	Plans      []struct {
		Name         string `yaml:"name"`
		ListingQuota uint   `yaml:"listing_quota"`
		DurationDays uint   `yaml:"duration_days"`
		Price        uint64 `yaml:"price"`
	} `yaml:"plans"`
	SiteSettings struct {
		SiteName  string `yaml:"site_name"`
		HeroTitle string `yaml:"hero_title"`
		HeroText  string `yaml:"hero_text"`
		AboutText string `yaml:"about_text"`
		Contact   map[string]string `yaml:"contact"`
		Social    map[string]string `yaml:"social"`
	} `yaml:"site_settings"`
	FAQs []struct {
		Title  string `yaml:"title"`
		Answer string `yaml:"answer"`
	} `yaml:"faqs"`
}

// Run seeds all catalogs. Every step is idempotent: existing rows are
// left untouched.
func Run(db *gorm.DB) error {
	var data seedFile
	if err := yaml.Unmarshal(seedData, &data); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	log := logger.NewLogger().With("component", "seeds")

	if err := seedCities(db, data.Cities); err != nil {
		return err
	}
	if err := seedCategories(db, data.Categories); err != nil {
		return err
	}
	if err := seedPlans(db, data); err != nil {
		return err
	}
	if err := seedSiteSettings(db, data); err != nil {
		return err
	}
	if err := seedFAQs(db, data); err != nil {
		return err
	}

	log.Infow("seed data applied",
		"cities", len(data.Cities),
		"categories", len(data.Categories),
		"plans", len(data.Plans),
		"faqs", len(data.FAQs))
	return nil
}

func seedCities(db *gorm.DB, names []string) error {
	for _, name := range names {
		model := models.CityModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed city %q: %w", name, err)
		}
	}
	return nil
}

func seedCategories(db *gorm.DB, titles []string) error {
	for _, title := range titles {
		model := models.CategoryModel{Title: title}
		if err := db.Where("title = ?", title).FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", title, err)
		}
	}
	return nil
}

func seedPlans(db *gorm.DB, data seedFile) error {
	for _, p := range data.Plans {
		var count int64
		if err := db.Model(&models.PlanModel{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check plan %q: %w", p.Name, err)
		}
		if count > 0 {
			continue
		}

		model := models.PlanModel{
			SID:          id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
			Name:         p.Name,
			ListingQuota: p.ListingQuota,
			DurationDays: p.DurationDays,
			Price:        p.Price,
		}
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed plan %q: %w", p.Name, err)
		}
	}
	return nil
}

func seedSiteSettings(db *gorm.DB, data seedFile) error {
	if data.SiteSettings.SiteName == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.SiteSettingModel{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check site settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	contact, err := json.Marshal(data.SiteSettings.Contact)
	if err != nil {
		return fmt.Errorf("failed to encode contact seed: %w", err)
	}
	social, err := json.Marshal(data.SiteSettings.Social)
	if err != nil {
		return fmt.Errorf("failed to encode social seed: %w", err)
	}

	model := models.SiteSettingModel{
		SiteName:  data.SiteSettings.SiteName,
		HeroTitle: data.SiteSettings.HeroTitle,
		HeroText:  data.SiteSettings.HeroText,
		AboutText: data.SiteSettings.AboutText,
		Contact:   contact,
		Social:    social,
		IsActive:  true,
	}
	if err := db.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to seed site settings: %w", err)
	}
	return nil
}

func seedFAQs(db *gorm.DB, data seedFile) error {
	for _, f := range data.FAQs {
		model := models.FAQModel{Title: f.Title, Answer: f.Answer}
		if err := db.Where("title = ?", f.Title).FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to seed faq %q: %w", f.Title, err)
		}
	}
	return nil
}
