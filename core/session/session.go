package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated server-side session bound to exactly one
// principal. At most one active session exists per principal at any time;
// a newer login supersedes the older session.
type Session struct {
	// ID is the stable unique session identifier, used for logging and
	// store bookkeeping. It never changes during the session lifecycle.
	ID uuid.UUID

	// Token is the opaque session identifier handed to the client
	// (32 bytes, base64url). The server-side record is authoritative.
	Token string

	// PrincipalID identifies the authenticated principal.
	PrincipalID uuid.UUID

	// Authorities is the principal's granted-authority set captured at
	// login. Authorization checks read it from the session record so they
	// never touch the credential store.
	Authorities []string

	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpiresAt      time.Time
}

// New creates a session for the principal with a freshly generated token.
func New(principalID uuid.UUID, authorities []string, ttl time.Duration) (Session, error) {
	if principalID == uuid.Nil {
		return Session{}, ErrMissingPrincipal
	}

	token, err := generateToken()
	if err != nil {
		return Session{}, errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	return Session{
		ID:             uuid.New(),
		Token:          token,
		PrincipalID:    principalID,
		Authorities:    authorities,
		CreatedAt:      now,
		LastAccessedAt: now,
		ExpiresAt:      now.Add(ttl),
	}, nil
}

// IsExpired reports whether the session has passed its expiration time.
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch records activity and slides the expiration window, but only when the
// touch interval has elapsed since the last recorded access. Returns true if
// the session changed and needs saving.
func (s *Session) Touch(ttl, touchInterval time.Duration) bool {
	if time.Since(s.LastAccessedAt) < touchInterval {
		return false
	}
	now := time.Now()
	s.LastAccessedAt = now
	s.ExpiresAt = now.Add(ttl)
	return true
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
