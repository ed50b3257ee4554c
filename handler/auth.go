package handler

import (
	"fmt"
	"html"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/authkit"
	"github.com/dmitrymomot/authkit/core/authfail"
	"github.com/dmitrymomot/authkit/core/sessiontransport"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Form field names are part of the external contract: login forms must post
// exactly these names.
const (
	fieldUsername    = "username"
	fieldPassword    = "password"
	fieldDisplayName = "display_name"
)

// Auth bundles the HTTP handlers of the authentication surface: login,
// logout, signup, and the failure display page. All failures are converted
// into redirect-with-message outcomes at this boundary; none propagate as
// server faults.
type Auth struct {
	auth       *authkit.Authenticator
	transport  *sessiontransport.Cookie
	classifier authfail.Classifier
	cfg        *Config
}

// New creates the handler set around the authenticator and session transport.
func New(auth *authkit.Authenticator, transport *sessiontransport.Cookie, opts ...Option) *Auth {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Auth{
		auth:       auth,
		transport:  transport,
		classifier: authfail.NewClassifier(cfg.FailureURL),
		cfg:        cfg,
	}
}

// Login handles the login form submission. Success embeds the session token
// in the signed cookie and redirects to the configured default URL; any
// failure classifies into a safe message and redirects to the failure page.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectFailure(w, r, fmt.Errorf("malformed login form: %w", err))
		return
	}

	username := r.PostFormValue(fieldUsername)
	plaintext := r.PostFormValue(fieldPassword)

	sess, err := h.auth.Login(r.Context(), username, plaintext)
	if err != nil {
		h.redirectFailure(w, r, err)
		return
	}

	if err := h.transport.Embed(w, sess); err != nil {
		h.redirectFailure(w, r, err)
		return
	}

	http.Redirect(w, r, h.cfg.SuccessURL, http.StatusSeeOther)
}

// Logout ends the caller's session, clears the session cookie, and redirects
// to the post-logout URL. Logging out without a session is a success.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.transport.Logout(w, r); err != nil {
		h.cfg.logger.ErrorContext(r.Context(), "logout failed", logger.Error(err))
	}
	http.Redirect(w, r, h.cfg.LogoutURL, http.StatusSeeOther)
}

// Signup handles the registration form. The three persistence outcomes map
// to distinct messages and targets: created goes to the login page, duplicate
// and failure stay on the signup form.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectMessage(w, r, h.cfg.SignupURL, "registration failed, please try again")
		return
	}

	outcome, err := h.auth.Register(r.Context(), authkit.RegisterParams{
		Username:    r.PostFormValue(fieldUsername),
		Password:    r.PostFormValue(fieldPassword),
		DisplayName: r.PostFormValue(fieldDisplayName),
	})
	if err != nil {
		h.cfg.logger.InfoContext(r.Context(), "invalid registration payload", logger.Error(err))
		h.redirectMessage(w, r, h.cfg.SignupURL, "registration failed, please try again")
		return
	}

	switch outcome {
	case authkit.OutcomeCreated:
		h.redirectMessage(w, r, h.cfg.LoginURL, "registration completed successfully")
	case authkit.OutcomeDuplicate:
		h.redirectMessage(w, r, h.cfg.SignupURL, "an account with this identifier already exists")
	default:
		h.redirectMessage(w, r, h.cfg.SignupURL, "registration failed, please try again")
	}
}

// Fail renders the failure display page, echoing the message from the query
// component. The message is HTML-escaped; it reached this page URL-encoded.
func (h *Auth) Fail(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if message == "" {
		message = authfail.KindUnknown.Message()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, "<!DOCTYPE html><html><body><p>%s</p><a href=%q>back to login</a></body></html>",
		html.EscapeString(message), h.cfg.LoginURL)
}

func (h *Auth) redirectFailure(w http.ResponseWriter, r *http.Request, err error) {
	kind, target := h.classifier.Redirect(err)
	h.cfg.logger.InfoContext(r.Context(), "authentication failed",
		logger.Error(err), logger.Component("handler"),
		logger.ID("kind", kind.String()))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Auth) redirectMessage(w http.ResponseWriter, r *http.Request, target, message string) {
	http.Redirect(w, r, target+"?message="+url.QueryEscape(message), http.StatusSeeOther)
}
