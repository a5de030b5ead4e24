package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/agent/dto"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

// LoginUseCase checks credentials and issues a session token pair. Wrong
// email and wrong password produce the same refusal.
type LoginUseCase struct {
	agentRepo agent.Repository
	hasher    PasswordHasher
	tokens    TokenIssuer
	logger    logger.Interface
}

func NewLoginUseCase(
	agentRepo agent.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		agentRepo: agentRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResponse, error) {
	a, err := uc.agentRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := uc.hasher.Verify(cmd.Password, a.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !a.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	pair, err := uc.tokens.Generate(a.SID(), a.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("agent logged in", "sid", a.SID())

	return &dto.AuthResponse{
		Agent:        dto.NewAgentResponse(a),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// RefreshTokenUseCase swaps a refresh token for a fresh pair, re-checking
// that the account still exists and is active.
type RefreshTokenUseCase struct {
	agentRepo agent.Repository
	tokens    TokenIssuer
	verifier  TokenVerifier
}

// TokenVerifier resolves a refresh token back to its agent.
type TokenVerifier interface {
	VerifyRefresh(refreshToken string) (agentSID string, err error)
}

func NewRefreshTokenUseCase(agentRepo agent.Repository, tokens TokenIssuer, verifier TokenVerifier) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{agentRepo: agentRepo, tokens: tokens, verifier: verifier}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	sid, err := uc.verifier.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	a, err := uc.agentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a == nil || !a.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
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
