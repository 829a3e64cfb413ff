// Package cart implements the shopping-cart store: the authoritative list of
// cart lines for one client scope, with derived totals and write-through
// persistence to durable storage.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"rocketry-shop/models"
	"rocketry-shop/storage"
)

// Key is the storage key the cart collection is persisted under.
const Key = "cart"

// Store owns the cart lines for one scope. Every mutation writes the full
// collection back to storage; aggregates are computed fresh on each call.
type Store struct {
	mu    sync.Mutex
	kv    storage.KV
	items []models.CartLine
}

// New rehydrates a store from kv. An absent or unparseable stored value
// yields an empty cart; the failure is not surfaced.
func New(ctx context.Context, kv storage.KV) *Store {
	s := &Store{kv: kv}

	raw, ok, err := kv.Get(ctx, Key)
	if err != nil || !ok {
		return s
	}
	var items []models.CartLine
	if err := json.Unmarshal(raw, &items); err != nil {
		return s
	}
	s.items = items
	return s
}

// AddItem inserts a new line with quantity 1, or increments the existing
// line's quantity. The product fields are snapshotted at call time and never
// re-synced with the catalog.
func (s *Store) AddItem(ctx context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, models.CartLine{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    1,
	})
	return s.persist(ctx)
}

// RemoveItem deletes the line for productID. Absent ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, productID)
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value of 0
// or less removes the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, productID)
	}

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// Items returns a snapshot of the cart lines in insertion order.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of price times quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) removeLocked(ctx context.Context, productID string) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.CartLine{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, Key, raw)
}
