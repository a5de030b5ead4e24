package agent

import "errors"

var (
	ErrAgentNotFound      = errors.New("agent not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email address not verified")
	ErrAccountInactive    = errors.New("account is deactivated")
)
