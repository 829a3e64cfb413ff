// Package services wires the core stores to the HTTP layer. Each client
// scope (the analogue of one browser origin) gets its own cart and session
// store over a namespaced slice of storage.
package services

import (
	"context"
	"sync"

	"rocketry-shop/cart"
	"rocketry-shop/session"
	"rocketry-shop/storage"
)

// Registry hands out the per-scope store pair, building each lazily on first
// use and rehydrating it from storage.
type Registry struct {
	mu       sync.Mutex
	kv       storage.KV
	tables   session.Tables
	carts    map[string]*cart.Store
	sessions map[string]*session.Store
}

func NewRegistry(kv storage.KV, tables session.Tables) *Registry {
	return &Registry{
		kv:       kv,
		tables:   tables,
		carts:    make(map[string]*cart.Store),
		sessions: make(map[string]*session.Store),
	}
}

// Cart returns the cart store for scope.
func (r *Registry) Cart(ctx context.Context, scope string) *cart.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.carts[scope]; ok {
		return s
	}
	s := cart.New(ctx, r.scoped(scope))
	r.carts[scope] = s
	return s
}

// Session returns the session store for scope.
func (r *Registry) Session(ctx context.Context, scope string) *session.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[scope]; ok {
		return s
	}
	s := session.New(ctx, r.scoped(scope), r.tables)
	r.sessions[scope] = s
	return s
}

func (r *Registry) scoped(scope string) storage.KV {
	return storage.Namespaced(r.kv, "scope:"+scope)
}
