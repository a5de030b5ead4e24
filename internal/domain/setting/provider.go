package setting

import "context"

// Provider hands request code an immutable settings snapshot. The snapshot
// only changes when Refresh is called after an operator edit; there is no
// background polling.
type Provider interface {
	// Current returns the last loaded snapshot. It never hits the store.
	Current() Snapshot

	// Refresh reloads the snapshot from the store.
	Refresh(ctx context.Context) error
}
