package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/agent/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type RegisterAgentCommand struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// RegisterAgentUseCase creates an agent account, issues an email
// verification code and logs the new agent in.
type RegisterAgentUseCase struct {
	agentRepo agent.Repository
	hasher    PasswordHasher
	tokens    TokenIssuer
	codes     CodeGenerator
	mailer    VerificationMailer
	logger    logger.Interface
}

func NewRegisterAgentUseCase(
	agentRepo agent.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	codes CodeGenerator,
	mailer VerificationMailer,
	logger logger.Interface,
) *RegisterAgentUseCase {
	return &RegisterAgentUseCase{
		agentRepo: agentRepo,
		hasher:    hasher,
		tokens:    tokens,
		codes:     codes,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *RegisterAgentUseCase) Execute(ctx context.Context, cmd RegisterAgentCommand) (*dto.AuthResponse, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := uc.agentRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a, err := agent.NewAgent(cmd.Name, cmd.Email, cmd.Phone, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := uc.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}
	a.IssueVerifyCode(code)

	if err := uc.agentRepo.Create(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create agent", "email", a.Email(), "error", err)
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	uc.logger.Infow("agent registered", "sid", a.SID(), "email", a.Email())

	if err := uc.mailer.SendVerificationCode(a.Email(), code); err != nil {
		uc.logger.Warnw("verification email failed", "sid", a.SID(), "error", err)
	}

	pair, err := uc.tokens.Generate(a.SID(), a.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &dto.AuthResponse{
		Agent:        dto.NewAgentResponse(a),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
