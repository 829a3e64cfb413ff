// Package storage provides the durable key-value layer the stores persist to.
// Values are opaque JSON blobs; each client scope owns a disjoint key prefix.
package storage

import "context"

// KV is the persistence contract shared by every store in the application.
type KV interface {
	// Get returns the value for key. The second result is false if the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

type namespaced struct {
	kv     KV
	prefix string
}

// Namespaced returns a view of kv in which every key is prefixed with
// "prefix:". Stores built over the view keep their fixed logical keys while
// remaining isolated from other scopes.
func Namespaced(kv KV, prefix string) KV {
	return &namespaced{kv: kv, prefix: prefix + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.kv.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.kv.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.kv.Delete(ctx, n.prefix+key)
}
