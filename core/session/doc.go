// Package session implements server-side session management with a
// single-session-per-principal policy.
//
// # Core Components
//
//   - Session: the server-held record bound to one principal; the client only
//     ever sees the opaque token.
//   - Manager: lifecycle coordinator. Start on login, GetByToken on access,
//     Touch for sliding expiration, Logout, CleanupExpired.
//   - Store: persistence interface (in-memory here, Redis in
//     integration/database/redis).
//
// # Single-session policy
//
// A successful login for a principal who already holds an active session
// supersedes the old session: it is removed from the active table before the
// new one is inserted, atomically inside the store. Two concurrent logins for
// the same principal therefore never both stay active: whichever Save runs
// last observes and removes the other. The policy prevents credential sharing
// and stale concurrent access.
//
// # Expiry
//
// TTL is an idle timeout. Each access may slide the window via Touch, which
// is throttled by TouchInterval to keep store writes bounded. A lookup that
// finds an expired session removes it and returns ErrExpired, which the HTTP
// layer translates into a redirect to the invalid-session target rather than
// an authorization error.
//
// # Logout
//
// Logout is deterministic and idempotent: removing a missing or already
// expired session is a no-op success.
package session
