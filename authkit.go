// Package authkit is a session-based authentication layer: it verifies
// credentials against a pluggable user store, manages server-side sessions
// with a single-session-per-principal policy, enforces ordered role-based
// route authorization, and classifies failures into safe, user-facing
// redirect messages.
//
// The Authenticator ties the pieces together:
//
//	users := userstore.NewMemoryStore()
//	hasher := password.New()
//	sessions := session.NewManager(session.NewMemoryStore())
//
//	auth := authkit.New(users, hasher, sessions)
//
//	sess, err := auth.Login(ctx, "alice", "s3cret")
//	outcome, err := auth.Register(ctx, authkit.RegisterParams{
//		Username:    "alice",
//		Password:    "s3cret",
//		DisplayName: "Alice",
//	})
//
// HTTP wiring (handlers, middleware, cookie transport) lives in the handler,
// middleware, and core/sessiontransport packages; storage integrations in
// integration/database.
package authkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/core/authfail"
	"github.com/dmitrymomot/authkit/core/password"
	"github.com/dmitrymomot/authkit/core/principal"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/userstore"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Authenticator is the authentication service: credential lookup and
// verification on login, hashing and persistence on registration. Session
// lifecycle is delegated to the session manager; route authorization to the
// authz rules evaluated by the middleware.
type Authenticator struct {
	users         userstore.Store
	hasher        *password.Hasher
	sessions      *session.Manager
	lookupTimeout time.Duration
	log           *slog.Logger
}

// New creates an authenticator over the given store, hasher, and session
// manager.
func New(users userstore.Store, hasher *password.Hasher, sessions *session.Manager, opts ...AuthOption) *Authenticator {
	cfg := defaultAuthConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Authenticator{
		users:         users,
		hasher:        hasher,
		sessions:      sessions,
		lookupTimeout: cfg.LookupTimeout,
		log:           cfg.logger,
	}
}

// Login verifies the credential pair and starts a session for the principal.
//
// The store lookup is bounded by the configured timeout and not retried; a
// lookup failure or timeout classifies as an account lookup error. An unknown
// identifier and a wrong password return distinct internal sentinels that the
// failure classifier collapses into one generic client-facing message.
// A successful login supersedes any session the principal already holds.
func (a *Authenticator) Login(ctx context.Context, username, plaintext string) (session.Session, error) {
	if username == "" || plaintext == "" {
		return session.Session{}, authfail.ErrBadCredentials
	}

	p, err := a.findPrincipal(ctx, username)
	if err != nil {
		return session.Session{}, err
	}

	if !a.hasher.Verify(plaintext, p.PasswordHash) {
		a.log.InfoContext(ctx, "login rejected: password mismatch", logger.Principal(p))
		return session.Session{}, authfail.ErrBadCredentials
	}

	if !p.IsActive(time.Now()) {
		a.log.InfoContext(ctx, "login rejected: inactive account", logger.Principal(p))
		return session.Session{}, authfail.ErrAccountInactive
	}

	sess, err := a.sessions.Start(ctx, p.ID, p.Authorities())
	if err != nil {
		return session.Session{}, err
	}

	a.log.InfoContext(ctx, "login succeeded",
		logger.Principal(p), logger.SessionID(sess.ID))
	return sess, nil
}

// Logout ends the session identified by the client token. Missing or already
// expired sessions are a no-op success.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	return a.sessions.Logout(ctx, token)
}

// Sessions exposes the session manager for transports and middleware.
func (a *Authenticator) Sessions() *session.Manager {
	return a.sessions
}

func (a *Authenticator) findPrincipal(ctx context.Context, username string) (principal.Principal, error) {
	ctx, cancel := a.boundLookup(ctx)
	defer cancel()

	p, err := a.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, userstore.ErrNotFound):
		a.log.InfoContext(ctx, "login rejected: unknown identifier",
			slog.String("username", username))
		return principal.Principal{}, fmt.Errorf("%w: %s", authfail.ErrUnknownUser, username)
	default:
		a.log.ErrorContext(ctx, "credential lookup failed", logger.Error(err))
		return principal.Principal{}, errors.Join(authfail.ErrLookupFailed, err)
	}
}

// boundLookup applies the lookup timeout unless the caller already set a
// tighter deadline.
func (a *Authenticator) boundLookup(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.lookupTimeout)
}
