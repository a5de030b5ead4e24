package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// ArticleRepository implements the article repository port on gorm.
type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
	logger logger.Interface
}

func NewArticleRepository(db *gorm.DB, logger logger.Interface) article.Repository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
		logger: logger,
	}
}

func (r *ArticleRepository) Create(ctx context.Context, entity *article.Article) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map article entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create article", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	if err := r.replaceCategories(tx, model, entity.CategoryIDs()); err != nil {
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set article ID: %w", err)
	}

	r.logger.Infow("article created", "id", model.ID, "status", model.Status)
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, entity *article.Article) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map article entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)
	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update article", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update article: %w", err)
	}

	return r.replaceCategories(tx, model, entity.CategoryIDs())
}

// replaceCategories syncs the join table with the entity's category set.
func (r *ArticleRepository) replaceCategories(tx *gorm.DB, model *models.ArticleModel, categoryIDs []uint) error {
	categories := make([]models.CategoryModel, 0, len(categoryIDs))
	if len(categoryIDs) > 0 {
		if err := tx.Find(&categories, categoryIDs).Error; err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
	}

	if err := tx.Model(model).Association("Categories").Replace(categories); err != nil {
		return fmt.Errorf("failed to sync article categories: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, articleID uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Select("Categories").Delete(&models.ArticleModel{ID: articleID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return article.ErrArticleNotFound
	}

	r.logger.Infow("article deleted", "id", articleID)
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, articleID uint) (*article.Article, error) {
	var model models.ArticleModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Preload("Categories").
		First(&model, articleID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ArticleRepository) GetBySID(ctx context.Context, sid string) (*article.Article, error) {
	var model models.ArticleModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Preload("Categories").
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ArticleRepository) Search(ctx context.Context, filter article.Filter, vis article.Visibility, page, pageSize int) ([]*article.Article, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.ArticleModel{})
	query = r.applyVisibility(query, vis)
	query = r.applyFilter(query, filter)

	var total int64
	if err := query.Distinct(constants.TableArticles + ".id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	page = utils.ClampPage(page, total, pageSize)
	offset := (page - 1) * pageSize

	var articleModels []*models.ArticleModel
	err := query.
		Preload("Categories").
		Order(constants.TableArticles + ".created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&articleModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search articles: %w", err)
	}

	entities, err := r.mapper.ToEntities(articleModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *ArticleRepository) applyVisibility(query *gorm.DB, vis article.Visibility) *gorm.DB {
	if len(vis.Statuses) > 0 {
		statuses := make([]string, 0, len(vis.Statuses))
		for _, s := range vis.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where(constants.TableArticles+".status IN ?", statuses)
	}
	if vis.AuthorID != nil {
		query = query.Where(constants.TableArticles+".author_id = ?", *vis.AuthorID)
	}
	if vis.PublishedBefore != nil {
		query = query.Where(constants.TableArticles+".publish_at <= ?", *vis.PublishedBefore)
	}
	return query
}

func (r *ArticleRepository) applyFilter(query *gorm.DB, filter article.Filter) *gorm.DB {
	if search := utils.NormalizeSearchText(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN "+constants.TableAgents+" ON "+constants.TableAgents+".id = "+constants.TableArticles+".author_id").
			Where("LOWER("+constants.TableArticles+".title) LIKE ? OR LOWER("+constants.TableArticles+".body) LIKE ? OR LOWER("+constants.TableAgents+".name) LIKE ?",
				pattern, pattern, pattern)
	}

	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN "+constants.TableArticleCategories+" ON "+constants.TableArticleCategories+".article_model_id = "+constants.TableArticles+".id").
			Where(constants.TableArticleCategories+".category_model_id = ?", *filter.CategoryID)
	}

	return query
}

func (r *ArticleRepository) Latest(ctx context.Context, now time.Time, limit int) ([]*article.Article, error) {
	var articleModels []*models.ArticleModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Preload("Categories").
		Where("status = ? AND publish_at <= ?", publication.StatusPublished.String(), now).
		Order("created_at DESC").
		Limit(limit).
		Find(&articleModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load latest articles: %w", err)
	}

	return r.mapper.ToEntities(articleModels)
}

func (r *ArticleRepository) CountByStatus(ctx context.Context, authorID uint) (map[publication.Status]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ArticleModel{}).
		Select("status, COUNT(*) as count").
		Where("author_id = ?", authorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count articles by status: %w", err)
	}

	counts := make(map[publication.Status]int64, len(rows))
	for _, rw := range rows {
		status, err := publication.ParseStatus(rw.Status)
		if err != nil {
			continue
		}
		counts[status] = rw.Count
	}
	return counts, nil
}

func (r *ArticleRepository) ClearAuthor(ctx context.Context, authorID uint) error {
	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("author_id = ?", authorID).
		Update("author_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear article author: %w", err)
	}
	return nil
}
