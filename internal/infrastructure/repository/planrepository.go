package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// PlanRepository implements the plan catalog port on gorm.
type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepository{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepository) Create(ctx context.Context, entity *subscription.Plan) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	r.logger.Infow("plan created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepository) Update(ctx context.Context, entity *subscription.Plan) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, planID uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Delete(&models.PlanModel{}, planID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrPlanNotFound
	}

	r.logger.Infow("plan deleted", "id", planID)
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, planID uint) (*subscription.Plan, error) {
	var model models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, planID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) GetBySID(ctx context.Context, sid string) (*subscription.Plan, error) {
	var model models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []*models.PlanModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Order("price ASC").Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}
