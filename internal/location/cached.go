package location

import (
	"context"
	"sync"
	"time"
)

// maxFixAge mirrors the tolerance for serving a previously acquired fix
// instead of requesting a fresh one.
const maxFixAge = 5 * time.Minute

// CachedProvider wraps another provider and serves a cached fix while it is
// younger than maxFixAge. Failures are never cached.
type CachedProvider struct {
	inner Provider

	mu         sync.Mutex
	last       Fix
	acquiredAt time.Time
}

// NewCachedProvider wraps the given provider with fix caching.
func NewCachedProvider(inner Provider) *CachedProvider {
	return &CachedProvider{inner: inner}
}

// CurrentPosition returns the cached fix when fresh enough, otherwise
// delegates to the wrapped provider and records the result.
func (p *CachedProvider) CurrentPosition(ctx context.Context) (Fix, error) {
	p.mu.Lock()
	if !p.acquiredAt.IsZero() && time.Since(p.acquiredAt) < maxFixAge {
		fix := p.last
		p.mu.Unlock()
		return fix, nil
	}
	p.mu.Unlock()

	fix, err := p.inner.CurrentPosition(ctx)
	if err != nil {
		return Fix{}, err
	}

	p.mu.Lock()
	p.last = fix
	p.acquiredAt = time.Now()
	p.mu.Unlock()
	return fix, nil
}
