// Package principal models the authenticated identity: a stable ID, the login
// identifier, the stored credential digest, a role, and account flags.
//
// The role derives the granted-authority set consumed by the authz package.
// Authority matching is exact string equality; there is no role hierarchy, so
// a rule requiring "USER" does not admit "ADMIN" callers unless the rule grants
// both explicitly.
//
// The credential digest is treated as write-only data: Principal implements
// slog.LogValuer and a custom JSON marshaler, both of which omit the hash, so
// it cannot leak through logging or client-facing serialization.
//
// Account flags (Disabled, Locked, expiration timestamps) default to the
// active state. IsActive is the single check the authentication service uses
// before accepting a credential match.
package principal
