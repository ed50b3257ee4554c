package userstore

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrymomot/authkit/core/principal"
)

// MemoryStore is an in-memory Store for tests and single-node deployments.
// Usernames are matched case-insensitively, mirroring the unique index the
// Postgres store enforces.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]principal.Principal
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]principal.Principal),
	}
}

// FindByUsername returns the principal registered under the identifier.
func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (principal.Principal, error) {
	if err := ctx.Err(); err != nil {
		return principal.Principal{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.users[strings.ToLower(username)]
	if !ok {
		return principal.Principal{}, ErrNotFound
	}
	return p, nil
}

// Insert persists a new registration, rejecting duplicate identifiers.
func (s *MemoryStore) Insert(ctx context.Context, p principal.Principal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := strings.ToLower(p.Username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrDuplicate
	}
	s.users[key] = p
	return nil
}

// Len returns the number of stored principals.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
