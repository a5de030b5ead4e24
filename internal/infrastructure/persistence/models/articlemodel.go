package models

import (
	"time"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// ArticleModel is the persistence model for blog articles.
type ArticleModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	AuthorID     *uint  `gorm:"index:idx_articles_author"`
	Title        string `gorm:"not null;size:255"`
	Body         string `gorm:"type:text"`
	BodyHTML     string `gorm:"type:text"`
	ImageURL     string `gorm:"size:500"`
	Status       string `gorm:"not null;default:draft;size:20;index:idx_articles_status"`
	RevisionNote string `gorm:"type:text"`
	PublishAt    time.Time `gorm:"index:idx_articles_publish_at"`
	CreatedAt    time.Time `gorm:"index:idx_articles_created"`
	UpdatedAt    time.Time

	Author     *AgentModel     `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Categories []CategoryModel `gorm:"many2many:article_categories"`
}

func (ArticleModel) TableName() string {
	return constants.TableArticles
}

// CategoryModel is the persistence model for article categories.
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
