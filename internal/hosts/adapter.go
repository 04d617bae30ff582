// Package hosts contains the per-host extraction adapters and the registry
// that maps a classified host to its adapter. Each adapter turns a fetched
// document or platform API response into the common record; none of them
// cache, retry, or try alternate strategies when data is incomplete.
package hosts

import (
	"context"

	"github.com/jonesrussell/linkmeta/internal/domain"
)

// Request carries both link forms to an adapter. API-backed adapters derive
// their platform ids from the original link; scrape-backed adapters fetch
// the normalized one.
type Request struct {
	Link       string
	Normalized string
}

// Adapter is the extraction strategy for one host.
type Adapter interface {
	Host() domain.Host
	Resolve(ctx context.Context, req Request) (*domain.Record, error)
}

// Registry maps hosts to adapters. The mapping is assembled once at
// bootstrap and read-only afterwards, so it needs no locking.
type Registry struct {
	adapters map[domain.Host]Adapter
}

// NewRegistry builds a registry from the given adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	m := make(map[domain.Host]Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Host()] = a
	}
	return &Registry{adapters: m}
}

// Lookup returns the adapter registered for the host.
func (r *Registry) Lookup(h domain.Host) (Adapter, bool) {
	a, ok := r.adapters[h]
	return a, ok
}

// Hosts returns the hosts with a registered adapter.
func (r *Registry) Hosts() []domain.Host {
	hs := make([]domain.Host, 0, len(r.adapters))
	for h := range r.adapters {
		hs = append(hs, h)
	}
	return hs
}
