package domain

import (
	"sync"

	m "github.com/mouse-blink/autoload/internal/model"
)

// GuardedResolver lets mutations and queries of a Resolver overlap. Queries
// share a read lock; Update holds the write lock for its whole callback.
type GuardedResolver struct {
	mu       sync.RWMutex
	resolver *Resolver
}

// NewGuardedResolver wraps r. The caller must stop using r directly.
func NewGuardedResolver(r *Resolver) *GuardedResolver {
	return &GuardedResolver{resolver: r}
}

// Update runs fn with exclusive access to the resolver.
func (g *GuardedResolver) Update(fn func(*Resolver) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.resolver)
}

// Resolve is Resolver.Resolve under the read lock.
func (g *GuardedResolver) Resolve(id m.Identifier) (m.Path, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolver.Resolve(id)
}

// Explain is Resolver.Explain under the read lock.
func (g *GuardedResolver) Explain(id m.Identifier) m.Resolution {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolver.Explain(id)
}

// Load is Resolver.Load under the read lock. The LoadFunc runs while the
// lock is held, so it must not call Update.
func (g *GuardedResolver) Load(id m.Identifier) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolver.Load(id)
}
