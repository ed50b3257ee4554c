package authfail

import (
	"context"
	"errors"
	"net/url"

	"github.com/dmitrymomot/authkit/core/userstore"
)

// Kind is the closed set of authentication failure classifications. New kinds
// extend this set; the classifier maps every possible cause to exactly one of
// them, falling back to KindUnknown.
type Kind int

const (
	// KindUnknown is the catch-all for causes outside the known taxonomy.
	KindUnknown Kind = iota
	// KindInvalidCredentials covers both unknown identifier and wrong
	// password. The two are deliberately indistinguishable to the client to
	// prevent identifier enumeration; callers log the underlying cause.
	KindInvalidCredentials
	// KindAccountLookupError means the backing store was unreachable or
	// errored during the credential lookup.
	KindAccountLookupError
	// KindNoCredentials means a request reached an authenticated-only check
	// with no session.
	KindNoCredentials
)

// Engine failure sentinels. The authentication service wraps its outcomes
// with these; the classifier resolves them via errors.Is.
var (
	// ErrBadCredentials marks a password that did not verify against the
	// stored digest.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrUnknownUser marks a login identifier with no registered principal.
	// Classified identically to ErrBadCredentials for clients; kept distinct
	// for internal logging.
	ErrUnknownUser = errors.New("unknown user")
	// ErrAccountInactive marks a credential match on a disabled, locked, or
	// expired account.
	ErrAccountInactive = errors.New("account is not active")
	// ErrLookupFailed marks a credential store failure during login.
	ErrLookupFailed = errors.New("account lookup failed")
	// ErrNoCredentials marks an authenticated-only check with no session.
	ErrNoCredentials = errors.New("no credentials presented")
)

// Message returns the fixed user-facing message template for the kind.
// Messages are generic by design and must be escaped before being placed in
// a URL query component.
func (k Kind) Message() string {
	switch k {
	case KindInvalidCredentials:
		return "account or password mismatch"
	case KindAccountLookupError:
		return "server error occurred during authentication"
	case KindNoCredentials:
		return "authentication request was rejected"
	default:
		return "login request could not be processed"
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindAccountLookupError:
		return "account_lookup_error"
	case KindNoCredentials:
		return "no_credentials"
	default:
		return "unknown"
	}
}

// Classify maps a failure cause to its kind. The function is total: any
// error, including nil-adjacent oddities and causes added later, resolves to
// a kind, with KindUnknown as the fallback. It has no side effects.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrBadCredentials),
		errors.Is(err, ErrUnknownUser),
		errors.Is(err, ErrAccountInactive),
		errors.Is(err, userstore.ErrNotFound):
		return KindInvalidCredentials
	case errors.Is(err, ErrLookupFailed),
		errors.Is(err, userstore.ErrQueryFailed),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindAccountLookupError
	case errors.Is(err, ErrNoCredentials):
		return KindNoCredentials
	default:
		return KindUnknown
	}
}

// Classifier converts failure causes into a redirect target carrying the
// encoded user-facing message.
type Classifier struct {
	failurePath string
}

// NewClassifier creates a classifier redirecting to the given failure display
// path (default "/auth/fail").
func NewClassifier(failurePath string) Classifier {
	if failurePath == "" {
		failurePath = "/auth/fail"
	}
	return Classifier{failurePath: failurePath}
}

// Redirect returns the failure kind and the redirect target for the cause.
// The message is query-escaped before being embedded, so attacker-controlled
// identifiers that leak into messages cannot inject into the response.
func (c Classifier) Redirect(err error) (Kind, string) {
	kind := Classify(err)
	return kind, c.failurePath + "?message=" + url.QueryEscape(kind.Message())
}

// FailurePath returns the configured failure display path.
func (c Classifier) FailurePath() string {
	return c.failurePath
}
