package mappers

import (
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
)

// PlanMapper converts between plan entities and persistence models.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
	ToModel(entity *subscription.Plan) *models.PlanModel
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}
	return subscription.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.ListingQuota,
		model.DurationDays,
		model.Price,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PlanMapperImpl) ToModel(entity *subscription.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}
	return &models.PlanModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Name:         entity.Name(),
		ListingQuota: entity.ListingQuota(),
		DurationDays: entity.DurationDays(),
		Price:        entity.Price(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// SubscriptionMapper converts between subscription entities and persistence
// models.
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}
	return subscription.Reconstruct(subscription.ReconstructParams{
		ID:        model.ID,
		SID:       model.SID,
		AgentID:   model.AgentID,
		PlanName:  model.PlanName,
		PlanPrice: model.PlanPrice,
		Quota:     model.Quota,
		UsedCount: model.UsedCount,
		ExpiresAt: model.ExpiresAt,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		AgentID:   entity.AgentID(),
		PlanName:  entity.PlanName(),
		PlanPrice: entity.PlanPrice(),
		Quota:     entity.Quota(),
		UsedCount: entity.UsedCount(),
		ExpiresAt: entity.ExpiresAt(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *SubscriptionMapperImpl) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for _, model := range subModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
