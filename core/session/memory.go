package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store keeping the active-session table in two
// indexes: token -> session and principal -> token. Both are mutated under a
// single mutex, so Save's remove-old-insert-new is atomic per principal.
type MemoryStore struct {
	mu          sync.RWMutex
	byToken     map[string]Session
	byPrincipal map[uuid.UUID]string
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken:     make(map[string]Session),
		byPrincipal: make(map[uuid.UUID]string),
	}
}

// GetByToken returns the session with the given token.
func (s *MemoryStore) GetByToken(ctx context.Context, token string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byToken[token]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// GetByPrincipal returns the principal's active session.
func (s *MemoryStore) GetByPrincipal(ctx context.Context, principalID uuid.UUID) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.byPrincipal[principalID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s.byToken[token], nil
}

// Save inserts or updates the session. Any other session held by the same
// principal is removed in the same critical section, so concurrent logins
// for one principal always converge on exactly one active session.
func (s *MemoryStore) Save(ctx context.Context, sess Session) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	superseded := false
	if oldToken, ok := s.byPrincipal[sess.PrincipalID]; ok && oldToken != sess.Token {
		delete(s.byToken, oldToken)
		superseded = true
	}

	s.byToken[sess.Token] = sess
	s.byPrincipal[sess.PrincipalID] = sess.Token
	return superseded, nil
}

// Delete removes the session with the given token.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byToken[token]
	if !ok {
		return ErrNotFound
	}

	delete(s.byToken, token)
	// Only clear the principal index if it still points at this token;
	// a concurrent login may already have replaced it.
	if s.byPrincipal[sess.PrincipalID] == token {
		delete(s.byPrincipal, sess.PrincipalID)
	}
	return nil
}

// DeleteExpired removes all expired sessions and returns the count.
func (s *MemoryStore) DeleteExpired(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for token, sess := range s.byToken {
		if now.After(sess.ExpiresAt) {
			delete(s.byToken, token)
			if s.byPrincipal[sess.PrincipalID] == token {
				delete(s.byPrincipal, sess.PrincipalID)
			}
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of active sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byToken)
}
