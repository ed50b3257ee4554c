// Package middleware wires the session transport and the authorization rule
// table into the net/http request path.
//
// Authorize runs on every request: it loads the session from the signed
// cookie, evaluates the ordered rule table (first-match-wins, default deny),
// and converts denials into the configured redirects: login page for
// anonymous callers, invalid-session target for expired sessions, 403 for
// authenticated callers lacking the required authority. Authorization checks
// never touch the credential store; the authority set rides on the session
// record.
package middleware
