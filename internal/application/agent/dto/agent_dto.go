package dto

import (
	"time"

	"github.com/casaplex/casaplex/internal/domain/agent"
)

// SocialLinksResponse mirrors the agent's public profile links.
type SocialLinksResponse struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// AgentResponse is the API shape of an agent account. Public views are
// produced by NewPublicAgentResponse, which drops the private fields.
type AgentResponse struct {
	SID           string              `json:"sid"`
	Name          string              `json:"name"`
	Email         string              `json:"email,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Description   string              `json:"description,omitempty"`
	AvatarURL     string              `json:"avatar_url,omitempty"`
	Links         SocialLinksResponse `json:"links"`
	Role          string              `json:"role,omitempty"`
	Active        bool                `json:"active"`
	EmailVerified bool                `json:"email_verified"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NewAgentResponse maps an agent for its owner or an operator, private
// fields included.
func NewAgentResponse(a *agent.Agent) AgentResponse {
	links := a.Links()
	return AgentResponse{
		SID:         a.SID(),
		Name:        a.Name(),
		Email:       a.Email(),
		Phone:       a.Phone(),
		Description: a.Description(),
		AvatarURL:   a.AvatarURL(),
		Links: SocialLinksResponse{
			Website:   links.Website,
			Facebook:  links.Facebook,
			Twitter:   links.Twitter,
			LinkedIn:  links.LinkedIn,
			Instagram: links.Instagram,
			Telegram:  links.Telegram,
			YouTube:   links.YouTube,
		},
		Role:          a.Role().String(),
		Active:        a.IsActive(),
		EmailVerified: a.IsEmailVerified(),
		CreatedAt:     a.CreatedAt(),
	}
}

// NewPublicAgentResponse maps an agent for the public directory, keeping
// only what a visitor should see.
func NewPublicAgentResponse(a *agent.Agent) AgentResponse {
	resp := NewAgentResponse(a)
	resp.Email = ""
	resp.Role = ""
	resp.EmailVerified = false
	return resp
}

// NewPublicAgentResponses maps a directory page.
func NewPublicAgentResponses(agents []*agent.Agent) []AgentResponse {
	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, NewPublicAgentResponse(a))
	}
	return out
}

// NewAgentResponses maps an operator list, private fields included.
func NewAgentResponses(agents []*agent.Agent) []AgentResponse {
	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, NewAgentResponse(a))
	}
	return out
}

// AuthResponse carries the session tokens issued at registration, login
// and refresh.
type AuthResponse struct {
	Agent        AgentResponse `json:"agent"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
}
