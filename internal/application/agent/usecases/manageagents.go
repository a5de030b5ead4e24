package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/agent/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ListAgentsAdminCommand struct {
	Search string
	Page   int
}

// ListAgentsAdminUseCase pages all accounts for the operator console,
// deactivated ones included.
type ListAgentsAdminUseCase struct {
	agentRepo agent.Repository
}

func NewListAgentsAdminUseCase(agentRepo agent.Repository) *ListAgentsAdminUseCase {
	return &ListAgentsAdminUseCase{agentRepo: agentRepo}
}

func (uc *ListAgentsAdminUseCase) Execute(ctx context.Context, cmd ListAgentsAdminCommand) (*DirectoryResult, error) {
	pageSize := constants.DefaultPageSize
	filter := agent.DirectoryFilter{
		Search:   cmd.Search,
		Page:     cmd.Page,
		PageSize: pageSize,
	}
	agents, total, err := uc.agentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &DirectoryResult{
		Items:    dto.NewAgentResponses(agents),
		Total:    total,
		Page:     utils.ClampPage(cmd.Page, total, pageSize),
		PageSize: pageSize,
	}, nil
}

// PromoteAgentUseCase grants the operator role.
type PromoteAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewPromoteAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *PromoteAgentUseCase {
	return &PromoteAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *PromoteAgentUseCase) Execute(ctx context.Context, sid string) (*dto.AgentResponse, error) {
	a, err := uc.agentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found")
	}

	a.Promote()
	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to promote agent", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to promote agent: %w", err)
	}

	uc.logger.Infow("agent promoted to operator", "sid", sid)
	resp := dto.NewAgentResponse(a)
	return &resp, nil
}

// DeactivateAgentUseCase hides an account from the public directory and
// blocks logins. Their published content stays up.
type DeactivateAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewDeactivateAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *DeactivateAgentUseCase {
	return &DeactivateAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *DeactivateAgentUseCase) Execute(ctx context.Context, sid string) (*dto.AgentResponse, error) {
	a, err := uc.agentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found")
	}

	a.Deactivate()
	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to deactivate agent", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to deactivate agent: %w", err)
	}

	uc.logger.Infow("agent deactivated", "sid", sid)
	resp := dto.NewAgentResponse(a)
	return &resp, nil
}
