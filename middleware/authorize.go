package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/authz"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/sessiontransport"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

type sessionKey struct{}

// Config configures the authorization middleware.
type Config struct {
	// Transport loads and touches the request's session (required).
	Transport *sessiontransport.Cookie
	// Rules is the ordered authorization table evaluated per request path.
	Rules authz.Rules
	// LoginURL receives unauthenticated callers denied by a rule
	// (default "/auth/login").
	LoginURL string
	// InvalidSessionURL receives callers whose session expired
	// (default "/").
	InvalidSessionURL string
	// Skip defines a function to skip middleware execution for specific
	// requests, e.g. static assets.
	Skip func(r *http.Request) bool
	// Logger for structured logging (default: slog with io.Discard).
	Logger *slog.Logger
}

// Authorize creates middleware that loads the caller's session, evaluates the
// ordered rule table against the request path, and either passes the request
// through with the session in context or redirects/denies:
//
//   - expired session: redirect to InvalidSessionURL and drop the session
//   - anonymous caller on a protected path: redirect to LoginURL
//   - authenticated caller without the required authority: 403
//
// Allowed authenticated requests are touched, sliding the idle timeout.
func Authorize(cfg Config) func(http.Handler) http.Handler {
	if cfg.Transport == nil {
		panic("authorize middleware: transport is required")
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/auth/login"
	}
	if cfg.InvalidSessionURL == "" {
		cfg.InvalidSessionURL = "/"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := cfg.Transport.Load(r)
			authenticated := err == nil
			if err != nil {
				if errors.Is(err, session.ErrExpired) {
					cfg.Logger.InfoContext(r.Context(), "expired session presented",
						slog.String("path", r.URL.Path))
					http.Redirect(w, r, cfg.InvalidSessionURL, http.StatusSeeOther)
					return
				}
				if !errors.Is(err, session.ErrNotFound) {
					// Store failure on read: treat the caller as anonymous
					// rather than failing every request.
					cfg.Logger.ErrorContext(r.Context(), "session load failed", logger.Error(err))
				}
			}

			decision := cfg.Rules.Decide(r.URL.Path, authenticated, sess.Authorities)
			switch {
			case decision.Allowed:
			case decision.Reason == authz.DenyAnonymous:
				http.Redirect(w, r, cfg.LoginURL, http.StatusSeeOther)
				return
			default:
				cfg.Logger.InfoContext(r.Context(), "access forbidden",
					slog.String("path", r.URL.Path),
					slog.String("required", string(decision.Require)),
					logger.PrincipalID(sess.PrincipalID))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			if authenticated {
				touched, err := cfg.Transport.Touch(w, r, sess)
				if err != nil {
					cfg.Logger.WarnContext(r.Context(), "session touch failed", logger.Error(err))
				} else {
					sess = touched
				}
				r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetSession retrieves the authenticated session from the request context.
// Returns false for anonymous requests.
func GetSession(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(session.Session)
	return sess, ok
}
