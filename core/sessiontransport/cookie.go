package sessiontransport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/session"
)

// DefaultCookieName identifies the session token cookie.
const DefaultCookieName = "sid"

// Cookie provides HTTP cookie-based session transport.
// It stores Session.Token as the cookie value, signed via cookie.Manager,
// and resolves inbound tokens against the session manager.
type Cookie struct {
	sessions *session.Manager
	cookies  *cookie.Manager
	name     string
}

// NewCookie creates a cookie-based session transport. An empty name falls
// back to DefaultCookieName.
func NewCookie(sessions *session.Manager, cookies *cookie.Manager, name string) *Cookie {
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{
		sessions: sessions,
		cookies:  cookies,
		name:     name,
	}
}

// Load resolves the request's session from the signed cookie.
// A missing or tampered cookie returns session.ErrNotFound; an expired
// session returns session.ErrExpired after removal from the active table.
func (c *Cookie) Load(r *http.Request) (session.Session, error) {
	token, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		return session.Session{}, session.ErrNotFound
	}
	return c.sessions.GetByToken(r.Context(), token)
}

// Embed writes the session token into the signed cookie, with the cookie
// lifetime synchronized to the server-side expiration.
func (c *Cookie) Embed(w http.ResponseWriter, sess session.Session) error {
	until := time.Until(sess.ExpiresAt)
	if until <= 0 {
		return fmt.Errorf("cannot embed expired session (expired %v ago)", -until)
	}

	return c.cookies.SetSigned(w, c.name, sess.Token,
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(until.Seconds())),
	)
}

// Logout ends the request's session and clears the client-side cookie.
// Requests without a valid session are a no-op success.
func (c *Cookie) Logout(w http.ResponseWriter, r *http.Request) error {
	defer c.cookies.Delete(w, c.name)

	token, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		return nil
	}
	return c.sessions.Logout(r.Context(), token)
}

// Touch slides the session expiration on activity and keeps the cookie
// MaxAge synchronized when the server-side record changed.
func (c *Cookie) Touch(w http.ResponseWriter, r *http.Request, sess session.Session) (session.Session, error) {
	refreshed, err := c.sessions.Touch(r.Context(), sess)
	if err != nil {
		return session.Session{}, err
	}

	if refreshed.LastAccessedAt.After(sess.LastAccessedAt) {
		if err := c.Embed(w, refreshed); err != nil {
			return session.Session{}, err
		}
	}
	return refreshed, nil
}

// Name returns the session cookie name.
func (c *Cookie) Name() string {
	return c.name
}
