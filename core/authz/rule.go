package authz

import (
	"errors"
	"fmt"
	"path"
	"slices"
)

// Authority is the access requirement attached to a rule. Beyond the two
// built-in markers, any string is a role authority matched by exact equality
// against the caller's granted set.
type Authority string

const (
	// Public allows the request unconditionally.
	Public Authority = "PUBLIC"
	// Authenticated allows any caller with a valid, non-expired session.
	Authenticated Authority = "AUTHENTICATED"
	// AuthorityUser and AuthorityAdmin are the role authorities granted by
	// the principal roles of the same name.
	AuthorityUser  Authority = "USER"
	AuthorityAdmin Authority = "ADMIN"
)

// Rule binds a path pattern to a required authority. Patterns use path.Match
// syntax: "/admin/*" matches one path segment under /admin, "/auth/login"
// matches exactly.
type Rule struct {
	Pattern string
	Require Authority
}

// Rules is the ordered authorization table consulted for every request path.
// Evaluation is first-match-wins; a path matching no rule is denied and
// requires authentication (default deny). Every reachable path must appear,
// explicitly or via the default, which keeps the authorization surface
// auditable.
type Rules []Rule

// ErrBadPattern is returned by Validate for a malformed path pattern.
var ErrBadPattern = errors.New("malformed authorization rule pattern")

// Validate checks every rule pattern so malformed tables fail at startup
// rather than silently never matching.
func (rs Rules) Validate() error {
	for i, r := range rs {
		if _, err := path.Match(r.Pattern, "/"); err != nil {
			return fmt.Errorf("%w: rule %d %q", ErrBadPattern, i, r.Pattern)
		}
	}
	return nil
}

// DenyReason distinguishes why a request was denied so the transport layer
// can pick the right response: login redirect versus forbidden.
type DenyReason int

const (
	DenyNone DenyReason = iota
	// DenyAnonymous means authentication is required and the caller has no
	// valid session.
	DenyAnonymous
	// DenyForbidden means the caller is authenticated but lacks the exact
	// required authority.
	DenyForbidden
)

// Decision is the outcome of evaluating a request path against the table.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	// Require is the authority of the matched rule, or Authenticated when no
	// rule matched (default deny).
	Require Authority
}

// Decide resolves the request path against the ordered rule list.
// The caller's authenticated flag and granted authority set describe the
// session, if any; anonymous callers pass authenticated=false and nil
// authorities.
func (rs Rules) Decide(requestPath string, authenticated bool, authorities []string) Decision {
	require := Authenticated
	for _, r := range rs {
		ok, err := path.Match(r.Pattern, requestPath)
		if err != nil || !ok {
			continue
		}
		require = r.Require
		break
	}

	switch require {
	case Public:
		return Decision{Allowed: true, Require: require}
	case Authenticated:
		if authenticated {
			return Decision{Allowed: true, Require: require}
		}
		return Decision{Allowed: false, Reason: DenyAnonymous, Require: require}
	default:
		if !authenticated {
			return Decision{Allowed: false, Reason: DenyAnonymous, Require: require}
		}
		if slices.Contains(authorities, string(require)) {
			return Decision{Allowed: true, Require: require}
		}
		return Decision{Allowed: false, Reason: DenyForbidden, Require: require}
	}
}
