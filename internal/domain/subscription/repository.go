package subscription

import "context"

// PlanRepository is the persistence port for the plan catalog.
type PlanRepository interface {
	Create(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, planID uint) error
	// GetByID returns (nil, nil) when no plan matches.
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}

// Repository is the persistence port for purchased subscriptions.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error

	// GetCurrent returns the agent's most recently created subscription,
	// or (nil, nil) when they never purchased one.
	GetCurrent(ctx context.Context, agentID uint) (*Subscription, error)

	// GetCurrentForUpdate is GetCurrent under a row-level write lock. It
	// must run inside a transaction; the lock holds until commit so the
	// entitlement check and quota increment are atomic.
	GetCurrentForUpdate(ctx context.Context, agentID uint) (*Subscription, error)

	// ListByAgent returns the agent's full purchase history, newest first.
	ListByAgent(ctx context.Context, agentID uint) ([]*Subscription, error)

	// ClearAgent nulls the agent reference on a deleted agent's
	// subscriptions.
	ClearAgent(ctx context.Context, agentID uint) error
}
