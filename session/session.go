// Package session implements the authentication store: current identity,
// derived profile and order history, and credential checks against injected
// lookup tables. There is no account backend; registered accounts live only
// for the current session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"rocketry-shop/models"
	"rocketry-shop/storage"
	"rocketry-shop/utils"
)

// Key is the storage key the current identity is persisted under.
const Key = "user"

// Result is the outcome of a session operation. Failures are business-rule
// rejections, never faults.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Store owns the current identity for one client scope. Profile and orders
// are read-mostly projections looked up from the tables by identity id.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	tables  Tables
	current *models.Identity
	profile *models.Profile
	orders  []models.Order
}

// New rehydrates a store from kv. A malformed persisted identity is discarded
// and removed, resolving to the anonymous state.
func New(ctx context.Context, kv storage.KV, tables Tables) *Store {
	s := &Store{kv: kv, tables: tables}

	raw, ok, err := kv.Get(ctx, Key)
	if err != nil || !ok {
		return s
	}
	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		kv.Delete(ctx, Key)
		return s
	}

	s.current = &identity
	s.loadDerived(identity.ID)
	return s
}

// Login checks the credentials against the injected tables. The failure
// message never distinguishes an unknown email from a wrong password.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	if email == "" || password == "" {
		return Result{Success: false, Message: "Email and password are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.tables.Credentials[email]
	if ok && utils.VerifyPassword(hash, password) {
		if identity := s.tables.identityByEmail(email); identity != nil {
			s.current = identity
			s.loadDerived(identity.ID)
			s.persist(ctx)
			return Result{Success: true, Message: "Login successful"}
		}
	}

	return Result{Success: false, Message: "Invalid email or password"}
}

// Register synthesizes a session-local account. The new account is not added
// to the lookup tables, so it cannot be logged into again after logout.
func (s *Store) Register(ctx context.Context, name, email, password string) Result {
	if name == "" || email == "" || password == "" {
		return Result{Success: false, Message: "All fields are required"}
	}
	if len(password) < 6 {
		return Result{Success: false, Message: "Password must be at least 6 characters"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables.identityByEmail(email) != nil {
		return Result{Success: false, Message: "Email already in use"}
	}

	s.current = &models.Identity{
		ID:      fmt.Sprintf("user-%s", uuid.NewString()),
		Email:   email,
		Name:    name,
		IsAdmin: false,
	}
	s.profile = &models.Profile{
		Preferences: &models.Preferences{EmailNotifications: true, Marketing: false},
	}
	s.orders = nil
	s.persist(ctx)

	return Result{Success: true, Message: "Registration successful"}
}

// Logout clears the current identity and removes it from storage.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.profile = nil
	s.orders = nil
	s.kv.Delete(ctx, Key)
}

// UpdateProfile shallow-merges the patch into the current profile. The merge
// is session-local and does not survive a fresh login.
func (s *Store) UpdateProfile(patch models.ProfilePatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Result{Success: false, Message: "You must be logged in to update your profile"}
	}

	if s.profile == nil {
		s.profile = &models.Profile{}
	}
	s.profile.Apply(patch)

	return Result{Success: true, Message: "Profile updated successfully"}
}

// IsAuthenticated reports whether an identity is set.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Current returns the current identity, or nil when anonymous.
func (s *Store) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}

// Profile returns the current profile, or nil.
func (s *Store) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil
	}
	profile := *s.profile
	return &profile
}

// Orders returns the current identity's order history.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) loadDerived(identityID string) {
	if profile, ok := s.tables.Profiles[identityID]; ok {
		p := profile
		s.profile = &p
	} else {
		s.profile = nil
	}
	s.orders = s.tables.Orders[identityID]
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.current)
	if err != nil {
		return
	}
	s.kv.Set(ctx, Key, raw)
}
