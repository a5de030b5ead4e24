package setting

import "context"

// Repository is the persistence port for site settings. A single active
// row holds the live configuration.
type Repository interface {
	// GetActive returns the active settings row, or (nil, nil) when none
	// has been created yet.
	GetActive(ctx context.Context) (*SiteSetting, error)
	Create(ctx context.Context, s *SiteSetting) error
	Update(ctx context.Context, s *SiteSetting) error
}
