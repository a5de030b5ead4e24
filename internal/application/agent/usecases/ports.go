package usecases

import (
	"github.com/casaplex/casaplex/internal/infrastructure/auth"
	"github.com/casaplex/casaplex/internal/shared/authorization"
)

// PasswordHasher abstracts the bcrypt hasher for tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues and refreshes session token pairs.
type TokenIssuer interface {
	Generate(agentSID string, role authorization.Role) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

// CodeGenerator produces email verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// VerificationMailer delivers verification codes to agent mailboxes.
type VerificationMailer interface {
	SendVerificationCode(to, code string) error
}
