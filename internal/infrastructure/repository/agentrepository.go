package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/mappers"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// AgentRepository implements the agent repository port on gorm.
type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
	logger logger.Interface
}

func NewAgentRepository(db *gorm.DB, logger logger.Interface) agent.Repository {
	return &AgentRepository{
		db:     db,
		mapper: mappers.NewAgentMapper(),
		logger: logger,
	}
}

func (r *AgentRepository) Create(ctx context.Context, entity *agent.Agent) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map agent entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create agent", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create agent: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set agent ID: %w", err)
	}

	r.logger.Infow("agent created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *AgentRepository) Update(ctx context.Context, entity *agent.Agent) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map agent entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update agent", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update agent: %w", err)
	}

	return nil
}

func (r *AgentRepository) Delete(ctx context.Context, agentID uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Delete(&models.AgentModel{}, agentID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete agent", "id", agentID, "error", result.Error)
		return fmt.Errorf("failed to delete agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return agent.ErrAgentNotFound
	}

	r.logger.Infow("agent deleted", "id", agentID)
	return nil
}

func (r *AgentRepository) GetByID(ctx context.Context, agentID uint) (*agent.Agent, error) {
	var model models.AgentModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, agentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AgentRepository) GetBySID(ctx context.Context, sid string) (*agent.Agent, error) {
	var model models.AgentModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AgentRepository) GetByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	var model models.AgentModel

	email = strings.ToLower(strings.TrimSpace(email))
	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by email: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AgentRepository) List(ctx context.Context, filter agent.DirectoryFilter) ([]*agent.Agent, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.AgentModel{})

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if search := utils.NormalizeSearchText(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count agents: %w", err)
	}

	page := utils.ClampPage(filter.Page, total, filter.PageSize)
	offset := (page - 1) * filter.PageSize

	var agentModels []*models.AgentModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&agentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list agents: %w", err)
	}

	entities, err := r.mapper.ToEntities(agentModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
