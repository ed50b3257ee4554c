package session

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence interface for the active-session table.
// Implementations must handle concurrent access safely.
//
// Save carries the single-session contract: inserting a session atomically
// removes any existing session for the same principal, so two concurrent
// logins cannot both end up active: the later Save supersedes the earlier
// one inside the store's own critical section.
type Store interface {
	GetByToken(ctx context.Context, token string) (Session, error)
	GetByPrincipal(ctx context.Context, principalID uuid.UUID) (Session, error)
	// Save inserts or updates the session. It reports whether a different
	// active session for the same principal was superseded.
	Save(ctx context.Context, sess Session) (superseded bool, err error)
	// Delete removes the session with the given token. Deleting a missing
	// token returns ErrNotFound.
	Delete(ctx context.Context, token string) error
	// DeleteExpired removes all expired sessions and returns the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
