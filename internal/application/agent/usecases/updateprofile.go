package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/agent/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type UpdateProfileCommand struct {
	AgentID     uint
	Name        string
	Email       string
	Phone       string
	Description string
	AvatarURL   string
	Links       agent.SocialLinks
}

// UpdateProfileUseCase applies profile edits. Changing the email drops the
// verified flag and mails a fresh code to the new address.
type UpdateProfileUseCase struct {
	agentRepo agent.Repository
	codes     CodeGenerator
	mailer    VerificationMailer
	logger    logger.Interface
}

func NewUpdateProfileUseCase(
	agentRepo agent.Repository,
	codes CodeGenerator,
	mailer VerificationMailer,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		agentRepo: agentRepo,
		codes:     codes,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.AgentResponse, error) {
	a, err := uc.agentRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewUnauthorizedError("agent not found")
	}

	wasVerified := a.IsEmailVerified()
	if err := a.UpdateProfile(cmd.Name, cmd.Email, cmd.Phone, cmd.Description, cmd.AvatarURL, cmd.Links); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	emailChanged := wasVerified && !a.IsEmailVerified()
	if emailChanged {
		code, err := uc.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate verification code: %w", err)
		}
		a.IssueVerifyCode(code)
		defer func() {
			if err := uc.mailer.SendVerificationCode(a.Email(), code); err != nil {
				uc.logger.Warnw("verification email failed", "sid", a.SID(), "error", err)
			}
		}()
	}

	if err := uc.agentRepo.Update(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to update profile", "sid", a.SID(), "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "sid", a.SID(), "email_changed", emailChanged)
	resp := dto.NewAgentResponse(a)
	return &resp, nil
}

type ChangePasswordCommand struct {
	AgentID     uint
	OldPassword string
	NewPassword string
}

// ChangePasswordUseCase swaps the password after checking the old one.
type ChangePasswordUseCase struct {
	agentRepo agent.Repository
	hasher    PasswordHasher
	logger    logger.Interface
}

func NewChangePasswordUseCase(agentRepo agent.Repository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{agentRepo: agentRepo, hasher: hasher, logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	a, err := uc.agentRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return errors.NewUnauthorizedError("agent not found")
	}

	if err := uc.hasher.Verify(cmd.OldPassword, a.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := a.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to change password", "sid", a.SID(), "error", err)
		return fmt.Errorf("failed to change password: %w", err)
	}

	uc.logger.Infow("password changed", "sid", a.SID())
	return nil
}
