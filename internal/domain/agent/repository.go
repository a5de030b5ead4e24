package agent

import "context"

// DirectoryFilter narrows the public agent directory listing.
type DirectoryFilter struct {
	// Search matches against name and description, case-folded.
	Search string
	// ActiveOnly restricts to accounts that have not been deactivated.
	// The public directory always sets this; operator views may not.
	ActiveOnly bool
	Page       int
	PageSize   int
}

// Repository is the persistence port for agents.
type Repository interface {
	Create(ctx context.Context, a *Agent) error
	Update(ctx context.Context, a *Agent) error
	// Delete removes the agent row. Owned listings and articles survive
	// with their owner reference cleared.
	Delete(ctx context.Context, agentID uint) error

	// GetByID returns (nil, nil) when no agent matches.
	GetByID(ctx context.Context, agentID uint) (*Agent, error)
	GetBySID(ctx context.Context, sid string) (*Agent, error)
	GetByEmail(ctx context.Context, email string) (*Agent, error)

	List(ctx context.Context, filter DirectoryFilter) ([]*Agent, int64, error)
}
