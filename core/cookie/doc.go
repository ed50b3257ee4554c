// Package cookie provides HTTP cookie management with HMAC-SHA256 signing
// and secret rotation.
//
// The session transport stores the opaque session token in a signed cookie:
// the first secret signs new cookies and every configured secret verifies,
// so keys can rotate without invalidating live sessions. Verification uses
// constant-time comparison.
//
// Defaults are secure: Path "/", HttpOnly, SameSite Lax. Override per cookie
// with functional options or via environment-backed Config.
package cookie
