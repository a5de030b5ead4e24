// Package services holds the cached site settings provider.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/casaplex/casaplex/internal/domain/setting"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// CachedProvider keeps the active settings row in memory and serves it
// without touching the store. Refresh runs at startup and after operator
// edits; a missing row falls back to defaults so the site always renders.
type CachedProvider struct {
	repo   setting.Repository
	logger logger.Interface

	mu       sync.RWMutex
	snapshot setting.Snapshot
}

func NewCachedProvider(repo setting.Repository, logger logger.Interface) *CachedProvider {
	return &CachedProvider{
		repo:   repo,
		logger: logger,
	}
}

// Current returns the last loaded snapshot.
func (p *CachedProvider) Current() setting.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Refresh reloads the snapshot from the store.
func (p *CachedProvider) Refresh(ctx context.Context) error {
	active, err := p.repo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load site settings: %w", err)
	}

	var snap setting.Snapshot
	if active != nil {
		snap = active.Snapshot()
	} else {
		p.logger.Warnw("no site settings row, serving defaults")
	}

	p.mu.Lock()
	p.snapshot = snap
	p.mu.Unlock()
	return nil
}

var _ setting.Provider = (*CachedProvider)(nil)
