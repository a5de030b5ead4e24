// Package agent defines the selling-side user aggregate: property listers
// and article authors, plus the elevated operator role.
package agent

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/id"
)

// SocialLinks carries the optional public profile links of an agent.
type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Agent is the aggregate root for a marketplace account.
type Agent struct {
	id            uint
	sid           string
	name          string
	email         string
	phone         string
	passwordHash  string
	description   string
	avatarURL     string
	links         SocialLinks
	role          authorization.Role
	active        bool
	emailVerified bool
	verifyCode    string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewAgent creates an unverified agent account.
func NewAgent(name, email, phone, passwordHash string) (*Agent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &Agent{
		sid:       id.MustGenerateWithPrefix(id.PrefixAgent, id.DefaultLength),
		name:      name,
		email:     email,
		phone:     strings.TrimSpace(phone),
		passwordHash: passwordHash,
		role:      authorization.RoleAgent,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructParams rehydrates an Agent from persistence.
type ReconstructParams struct {
	ID            uint
	SID           string
	Name          string
	Email         string
	Phone         string
	PasswordHash  string
	Description   string
	AvatarURL     string
	Links         SocialLinks
	Role          authorization.Role
	Active        bool
	EmailVerified bool
	VerifyCode    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct builds an Agent from stored state.
func Reconstruct(p ReconstructParams) (*Agent, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}
	if p.Email == "" {
		return nil, fmt.Errorf("agent email is required")
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", p.Role)
	}
	return &Agent{
		id:            p.ID,
		sid:           p.SID,
		name:          p.Name,
		email:         p.Email,
		phone:         p.Phone,
		passwordHash:  p.PasswordHash,
		description:   p.Description,
		avatarURL:     p.AvatarURL,
		links:         p.Links,
		role:          p.Role,
		active:        p.Active,
		emailVerified: p.EmailVerified,
		verifyCode:    p.VerifyCode,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (a *Agent) ID() uint                 { return a.id }
func (a *Agent) SID() string              { return a.sid }
func (a *Agent) Name() string             { return a.name }
func (a *Agent) Email() string            { return a.email }
func (a *Agent) Phone() string            { return a.phone }
func (a *Agent) PasswordHash() string     { return a.passwordHash }
func (a *Agent) Description() string      { return a.description }
func (a *Agent) AvatarURL() string        { return a.avatarURL }
func (a *Agent) Links() SocialLinks       { return a.links }
func (a *Agent) Role() authorization.Role { return a.role }
func (a *Agent) IsActive() bool           { return a.active }
func (a *Agent) IsEmailVerified() bool    { return a.emailVerified }
func (a *Agent) VerifyCode() string       { return a.verifyCode }
func (a *Agent) CreatedAt() time.Time     { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time     { return a.updatedAt }

// IsOperator reports whether this account may moderate any entity.
func (a *Agent) IsOperator() bool {
	return a.role.IsOperator()
}

// SetID assigns the database identity after insertion.
func (a *Agent) SetID(newID uint) error {
	if a.id != 0 {
		return fmt.Errorf("agent ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}
	a.id = newID
	return nil
}

// UpdateProfile applies profile edits. Changing the email address drops the
// verified flag so the new address must be verified again.
func (a *Agent) UpdateProfile(name, email, phone, description, avatarURL string, links SocialLinks) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	if email != a.email {
		a.emailVerified = false
		a.verifyCode = ""
	}

	a.name = name
	a.email = email
	a.phone = strings.TrimSpace(phone)
	a.description = description
	a.avatarURL = avatarURL
	a.links = links
	a.touch()
	return nil
}

// IssueVerifyCode stores a fresh email verification code.
func (a *Agent) IssueVerifyCode(code string) {
	a.verifyCode = code
	a.touch()
}

// VerifyEmail checks the submitted code and marks the address verified.
func (a *Agent) VerifyEmail(code string) error {
	if a.emailVerified {
		return fmt.Errorf("email is already verified")
	}
	if a.verifyCode == "" || code != a.verifyCode {
		return fmt.Errorf("verification code does not match")
	}
	a.emailVerified = true
	a.verifyCode = ""
	a.touch()
	return nil
}

// Promote grants the operator role.
func (a *Agent) Promote() {
	a.role = authorization.RoleOperator
	a.touch()
}

// Deactivate hides the agent from the public directory.
func (a *Agent) Deactivate() {
	a.active = false
	a.touch()
}

// ChangePassword swaps in a new password hash.
func (a *Agent) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = newHash
	a.touch()
	return nil
}

func (a *Agent) touch() {
	a.updatedAt = biztime.NowUTC()
}
