package userstore

import (
	"context"

	"github.com/dmitrymomot/authkit/core/principal"
)

// Store is the credential store adapter consumed by the authentication
// service. The backing database is external; implementations must be safe
// for concurrent use.
type Store interface {
	// FindByUsername returns the principal registered under the login
	// identifier, or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (principal.Principal, error)

	// Insert persists a new registration. A unique-key conflict returns
	// ErrDuplicate; any other persistence failure returns an error wrapping
	// ErrQueryFailed. Callers normalize both to a "no row inserted" outcome.
	Insert(ctx context.Context, p principal.Principal) error
}
