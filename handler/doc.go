// Package handler exposes the authentication surface as net/http handlers:
// login and signup form submissions, logout, and the failure display page.
//
// The handlers are thin adapters: all authentication decisions happen in the
// authkit service, and every failure is recovered here and converted into a
// redirect carrying a percent-encoded message; no authentication error ever
// reaches the transport layer as an unhandled fault.
//
// Typical wiring:
//
//	h := handler.New(auth, transport)
//	mux.HandleFunc("POST /auth/login", h.Login)
//	mux.HandleFunc("GET /auth/logout", h.Logout)
//	mux.HandleFunc("POST /user/signup", h.Signup)
//	mux.HandleFunc("GET /auth/fail", h.Fail)
package handler
