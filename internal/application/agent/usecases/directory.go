package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/agent/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

type ListAgentsCommand struct {
	Search string
	Page   int
}

// DirectoryResult is one page of the public agent directory.
type DirectoryResult struct {
	Items    []dto.AgentResponse
	Total    int64
	Page     int
	PageSize int
}

// ListAgentsUseCase pages the public agent directory. Deactivated
// accounts never appear.
type ListAgentsUseCase struct {
	agentRepo agent.Repository
}

func NewListAgentsUseCase(agentRepo agent.Repository) *ListAgentsUseCase {
	return &ListAgentsUseCase{agentRepo: agentRepo}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, cmd ListAgentsCommand) (*DirectoryResult, error) {
	pageSize := constants.AgentPageSize
	filter := agent.DirectoryFilter{
		Search:     cmd.Search,
		ActiveOnly: true,
		Page:       cmd.Page,
		PageSize:   pageSize,
	}
	agents, total, err := uc.agentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &DirectoryResult{
		Items:    dto.NewPublicAgentResponses(agents),
		Total:    total,
		Page:     utils.ClampPage(cmd.Page, total, pageSize),
		PageSize: pageSize,
	}, nil
}

// GetAgentProfileUseCase loads one agent's public profile page. Deactivated
// accounts read as missing.
type GetAgentProfileUseCase struct {
	agentRepo agent.Repository
}

func NewGetAgentProfileUseCase(agentRepo agent.Repository) *GetAgentProfileUseCase {
	return &GetAgentProfileUseCase{agentRepo: agentRepo}
}

func (uc *GetAgentProfileUseCase) Execute(ctx context.Context, sid string) (*dto.AgentResponse, error) {
	a, err := uc.agentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil || !a.IsActive() {
		return nil, errors.NewNotFoundError("agent not found")
	}

	resp := dto.NewPublicAgentResponse(a)
	return &resp, nil
}

// GetOwnProfileUseCase loads the authenticated agent's own account.
type GetOwnProfileUseCase struct {
	agentRepo agent.Repository
}

func NewGetOwnProfileUseCase(agentRepo agent.Repository) *GetOwnProfileUseCase {
	return &GetOwnProfileUseCase{agentRepo: agentRepo}
}

func (uc *GetOwnProfileUseCase) Execute(ctx context.Context, agentID uint) (*dto.AgentResponse, error) {
	a, err := uc.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewUnauthorizedError("agent not found")
	}

	resp := dto.NewAgentResponse(a)
	return &resp, nil
}
