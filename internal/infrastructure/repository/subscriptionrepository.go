package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// SubscriptionRepository implements the subscription ledger port on gorm.
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, entity *subscription.Subscription) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"plan", model.PlanName,
		"quota", model.Quota,
		"expires_at", model.ExpiresAt)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, entity *subscription.Subscription) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) GetCurrent(ctx context.Context, agentID uint) (*subscription.Subscription, error) {
	return r.getCurrent(ctx, agentID, false)
}

// GetCurrentForUpdate takes a row-level write lock on the current
// subscription. It must run inside RunInTransaction; the lock holds until
// commit so the entitlement check and quota increment cannot race.
func (r *SubscriptionRepository) GetCurrentForUpdate(ctx context.Context, agentID uint) (*subscription.Subscription, error) {
	return r.getCurrent(ctx, agentID, true)
}

func (r *SubscriptionRepository) getCurrent(ctx context.Context, agentID uint, forUpdate bool) (*subscription.Subscription, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC")

	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.SubscriptionModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) ListByAgent(ctx context.Context, agentID uint) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&subModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}

func (r *SubscriptionRepository) ClearAgent(ctx context.Context, agentID uint) error {
	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("agent_id = ?", agentID).
		Update("agent_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear subscription agent: %w", err)
	}
	return nil
}
