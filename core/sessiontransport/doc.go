// Package sessiontransport moves the opaque session token between server and
// client over a signed HTTP cookie.
//
// Only the token crosses the wire; the authoritative session record stays
// server-side. The cookie is HMAC-signed, HttpOnly, SameSite Lax, and its
// MaxAge tracks the server-side expiration so client and server agree on
// session lifetime. Logout clears the cookie even when the server-side
// session is already gone, keeping the operation idempotent.
package sessiontransport
