package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/subscription/dto"
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// ListPlansUseCase returns the plan catalog for the public plans page and
// the operator plan table.
type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
}

func NewListPlansUseCase(planRepo subscription.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.NewPlanResponses(plans), nil
}

type CreatePlanCommand struct {
	Name         string
	ListingQuota uint
	DurationDays uint
	Price        uint64
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanResponse, error) {
	plan, err := subscription.NewPlan(cmd.Name, cmd.ListingQuota, cmd.DurationDays, cmd.Price)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "sid", plan.SID(), "name", plan.Name())
	resp := dto.NewPlanResponse(plan)
	return &resp, nil
}

type UpdatePlanCommand struct {
	PlanSID      string
	Name         string
	ListingQuota uint
	DurationDays uint
	Price        uint64
}

// UpdatePlanUseCase edits a catalog entry. Subscriptions purchased before
// the edit keep their snapshot terms.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanResponse, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	if err := plan.Update(cmd.Name, cmd.ListingQuota, cmd.DurationDays, cmd.Price); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "sid", cmd.PlanSID, "error", err)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "sid", plan.SID(), "name", plan.Name())
	resp := dto.NewPlanResponse(plan)
	return &resp, nil
}

// DeletePlanUseCase removes a catalog entry. Existing subscriptions carry
// their own snapshot and are untouched.
type DeletePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planSID string) error {
	plan, err := uc.planRepo.GetBySID(ctx, planSID)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return errors.NewNotFoundError("plan not found")
	}

	if err := uc.planRepo.Delete(ctx, plan.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan", "sid", planSID, "error", err)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "sid", planSID, "name", plan.Name())
	return nil
}
