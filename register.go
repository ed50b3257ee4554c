package authkit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/authkit/core/principal"
	"github.com/dmitrymomot/authkit/core/userstore"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// RegisterParams is the signup payload.
type RegisterParams struct {
	Username    string
	Password    string
	DisplayName string
	// Role defaults to principal.RoleUser when empty.
	Role principal.Role
}

// RegistrationOutcome is the three-way result surfaced to the caller,
// mirroring rows-affected semantics: no row (duplicate or persistence
// failure), zero rows (logical failure), one row (created).
type RegistrationOutcome int

const (
	// OutcomeFailed means the insert ran but no row landed, a logical
	// failure the user should retry.
	OutcomeFailed RegistrationOutcome = iota
	// OutcomeDuplicate means the identifier is already registered; no row
	// was inserted.
	OutcomeDuplicate
	// OutcomeCreated means exactly one principal row was inserted.
	OutcomeCreated
)

func (o RegistrationOutcome) String() string {
	switch o {
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeCreated:
		return "created"
	default:
		return "failed"
	}
}

// ErrInvalidRegistration is returned for a structurally invalid signup
// payload (missing identifier or password).
var ErrInvalidRegistration = errors.New("invalid registration payload")

// Register hashes the password and persists a new principal.
//
// Persistence failures never propagate to the transport layer: a duplicate
// key reports OutcomeDuplicate and any other store error reports
// OutcomeFailed, both with a nil error. The returned error is non-nil only
// for invalid input or a hashing fault.
func (a *Authenticator) Register(ctx context.Context, params RegisterParams) (RegistrationOutcome, error) {
	if params.Username == "" || params.Password == "" {
		return OutcomeFailed, ErrInvalidRegistration
	}
	if params.Role == "" {
		params.Role = principal.RoleUser
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return OutcomeFailed, err
	}

	p, err := principal.New(params.Username, params.DisplayName, hash, params.Role)
	if err != nil {
		return OutcomeFailed, err
	}

	ctx, cancel := a.boundLookup(ctx)
	defer cancel()

	switch err := a.users.Insert(ctx, p); {
	case err == nil:
		a.log.InfoContext(ctx, "principal registered", logger.Principal(p))
		return OutcomeCreated, nil
	case errors.Is(err, userstore.ErrDuplicate):
		a.log.InfoContext(ctx, "registration rejected: duplicate identifier",
			slog.String("username", params.Username))
		return OutcomeDuplicate, nil
	default:
		a.log.ErrorContext(ctx, "registration insert failed", logger.Error(err))
		return OutcomeFailed, nil
	}
}
