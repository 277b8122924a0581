package portal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	portal   *Portal
	lastSeen time.Time
}

// Registry owns the live portal sessions and expires idle ones.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	deps     Deps
	ttl      time.Duration
}

func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Registry{sessions: make(map[string]*entry), deps: deps, ttl: ttl}
}

// Get returns the portal for id, opening it on first use.
func (r *Registry) Get(ctx context.Context, id string) (*Portal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.deps.Now()
		return e.portal, nil
	}
	p, err := New(ctx, id, r.deps)
	if err != nil {
		return nil, err
	}
	r.sessions[id] = &entry{portal: p, lastSeen: r.deps.Now()}
	r.deps.Logger.Info("Portal session opened", zap.String("session", id))
	return p, nil
}

// Remove closes and forgets a session.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		e.portal.Close()
	}
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle for longer than the ttl and returns how many it closed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.deps.Now().Add(-r.ttl)
	var stale []*Portal
	r.mu.Lock()
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.portal)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()
	for _, p := range stale {
		p.Close()
	}
	if len(stale) > 0 {
		r.deps.Logger.Info("Expired idle portal sessions", zap.Int("count", len(stale)))
	}
	return len(stale)
}

// CloseAll closes every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()
	for _, e := range all {
		e.portal.Close()
	}
}
