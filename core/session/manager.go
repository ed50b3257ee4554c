package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Manager owns the active-session table and governs the session lifecycle:
// creation on login (superseding any prior session for the principal),
// expiry with sliding idle timeout, and idempotent logout.
type Manager struct {
	store         Store
	ttl           time.Duration
	touchInterval time.Duration
	log           *slog.Logger
}

// NewManager creates a session manager backed by the given store.
func NewManager(store Store, opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Manager{
		store:         store,
		ttl:           cfg.TTL,
		touchInterval: cfg.TouchInterval,
		log:           cfg.logger,
	}
}

// Start creates and persists a session for the principal. If the principal
// already holds an active session it is superseded inside the store's
// critical section, keeping the single-session invariant under concurrent
// logins.
func (m *Manager) Start(ctx context.Context, principalID uuid.UUID, authorities []string) (Session, error) {
	sess, err := New(principalID, authorities, m.ttl)
	if err != nil {
		return Session{}, err
	}

	superseded, err := m.store.Save(ctx, sess)
	if err != nil {
		return Session{}, errors.Join(ErrSaveSession, err)
	}
	if superseded {
		m.log.InfoContext(ctx, "session superseded by newer login",
			slog.String("principal_id", principalID.String()),
			slog.String("session_id", sess.ID.String()))
	}

	return sess, nil
}

// GetByToken retrieves a session by its client token and validates expiry.
// An expired session is removed from the active table and ErrExpired is
// returned so the transport can redirect to the invalid-session target.
func (m *Manager) GetByToken(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNotFound
	}

	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session{}, err
	}

	if sess.IsExpired() {
		if err := m.store.Delete(ctx, sess.Token); err != nil && !errors.Is(err, ErrNotFound) {
			m.log.WarnContext(ctx, "failed to remove expired session", slog.Any("error", err))
		}
		return Session{}, ErrExpired
	}

	return sess, nil
}

// GetByPrincipal returns the principal's active session, if any.
func (m *Manager) GetByPrincipal(ctx context.Context, principalID uuid.UUID) (Session, error) {
	sess, err := m.store.GetByPrincipal(ctx, principalID)
	if err != nil {
		return Session{}, err
	}
	if sess.IsExpired() {
		return Session{}, ErrExpired
	}
	return sess, nil
}

// Touch records activity on the session, sliding the expiration window when
// the touch interval has elapsed. Returns the possibly-updated session.
func (m *Manager) Touch(ctx context.Context, sess Session) (Session, error) {
	if !sess.Touch(m.ttl, m.touchInterval) {
		return sess, nil
	}
	if _, err := m.store.Save(ctx, sess); err != nil {
		return Session{}, errors.Join(ErrSaveSession, err)
	}
	return sess, nil
}

// Logout removes the session with the given token from the active table.
// Logging out a missing or already-expired session is a no-op success.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// CleanupExpired removes all expired sessions from the store.
// Should be called periodically to prevent active-table growth.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the session idle timeout.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
