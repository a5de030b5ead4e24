package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
	"github.com/casaplex/casaplex/internal/shared/authorization"
)

// AgentMapper converts between agent domain entities and persistence models.
type AgentMapper interface {
	ToEntity(model *models.AgentModel) (*agent.Agent, error)
	ToModel(entity *agent.Agent) (*models.AgentModel, error)
	ToEntities(models []*models.AgentModel) ([]*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToEntity(model *models.AgentModel) (*agent.Agent, error) {
	if model == nil {
		return nil, nil
	}

	var links agent.SocialLinks
	if len(model.SocialLinks) > 0 {
		if err := json.Unmarshal(model.SocialLinks, &links); err != nil {
			return nil, fmt.Errorf("failed to decode social links: %w", err)
		}
	}

	return agent.Reconstruct(agent.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		Name:          model.Name,
		Email:         model.Email,
		Phone:         model.Phone,
		PasswordHash:  model.PasswordHash,
		Description:   model.Description,
		AvatarURL:     model.AvatarURL,
		Links:         links,
		Role:          authorization.ParseRole(model.Role),
		Active:        model.Active,
		EmailVerified: model.EmailVerified,
		VerifyCode:    model.VerifyCode,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}

func (m *AgentMapperImpl) ToModel(entity *agent.Agent) (*models.AgentModel, error) {
	if entity == nil {
		return nil, nil
	}

	links, err := json.Marshal(entity.Links())
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	return &models.AgentModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		Name:          entity.Name(),
		Email:         entity.Email(),
		Phone:         entity.Phone(),
		PasswordHash:  entity.PasswordHash(),
		Description:   entity.Description(),
		AvatarURL:     entity.AvatarURL(),
		SocialLinks:   links,
		Role:          string(entity.Role()),
		Active:        entity.IsActive(),
		EmailVerified: entity.IsEmailVerified(),
		VerifyCode:    entity.VerifyCode(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *AgentMapperImpl) ToEntities(agentModels []*models.AgentModel) ([]*agent.Agent, error) {
	entities := make([]*agent.Agent, 0, len(agentModels))
	for _, model := range agentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map agent %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
