package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/agent/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type VerifyEmailCommand struct {
	AgentID uint
	Code    string
}

// VerifyEmailUseCase checks the submitted code and marks the agent's email
// verified, unlocking listing and article creation.
type VerifyEmailUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewVerifyEmailUseCase(agentRepo agent.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) (*dto.AgentResponse, error) {
	a, err := uc.agentRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewUnauthorizedError("agent not found")
	}

	if err := a.VerifyEmail(cmd.Code); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist email verification", "sid", a.SID(), "error", err)
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}

	uc.logger.Infow("email verified", "sid", a.SID())
	resp := dto.NewAgentResponse(a)
	return &resp, nil
}

// ResendVerificationUseCase issues a fresh code and mails it. The route in
// front of it is rate limited.
type ResendVerificationUseCase struct {
	agentRepo agent.Repository
	codes     CodeGenerator
	mailer    VerificationMailer
	logger    logger.Interface
}

func NewResendVerificationUseCase(
	agentRepo agent.Repository,
	codes CodeGenerator,
	mailer VerificationMailer,
	logger logger.Interface,
) *ResendVerificationUseCase {
	return &ResendVerificationUseCase{
		agentRepo: agentRepo,
		codes:     codes,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *ResendVerificationUseCase) Execute(ctx context.Context, agentID uint) error {
	a, err := uc.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return errors.NewUnauthorizedError("agent not found")
	}
	if a.IsEmailVerified() {
		return errors.NewConflictError("email is already verified")
	}

	code, err := uc.codes.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	a.IssueVerifyCode(code)

	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to store verification code", "sid", a.SID(), "error", err)
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := uc.mailer.SendVerificationCode(a.Email(), code); err != nil {
		uc.logger.Warnw("verification email failed", "sid", a.SID(), "error", err)
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	uc.logger.Infow("verification code resent", "sid", a.SID())
	return nil
}
