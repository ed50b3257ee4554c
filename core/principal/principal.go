package principal

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity: who the caller is, the stored
// credential digest, and the role the authority set derives from.
type Principal struct {
	// ID is the stable unique identifier assigned at registration.
	ID uuid.UUID

	// Username is the login identifier presented at authentication.
	Username string

	// DisplayName is the human-readable name shown in the UI.
	DisplayName string

	// PasswordHash is the salted adaptive digest of the credential.
	// Never the plaintext password; never logged or sent to clients.
	PasswordHash string

	Role Role

	// Account flags. Zero values mean an active account; the checks exist
	// as extension hooks and default to enabled.
	Disabled bool
	Locked   bool

	// CredentialsExpireAt and ExpiresAt bound credential and account
	// validity. Zero time means no expiration.
	CredentialsExpireAt time.Time
	ExpiresAt           time.Time

	CreatedAt time.Time
}

// New creates an active principal with the given identity attributes.
// The password hash must already be produced by the hasher.
func New(username, displayName, passwordHash string, role Role) (Principal, error) {
	if username == "" {
		return Principal{}, ErrMissingUsername
	}
	if passwordHash == "" {
		return Principal{}, ErrMissingPasswordHash
	}
	if !role.Valid() {
		return Principal{}, ErrInvalidRole
	}

	return Principal{
		ID:           uuid.New(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}

// Authorities returns the granted-authority set derived from the role.
// Authorization matches these strings by exact equality, not hierarchy:
// an ADMIN principal does not implicitly hold the USER authority.
func (p Principal) Authorities() []string {
	return []string{p.Role.String()}
}

// HasAuthority reports whether the exact authority string is granted.
func (p Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities() {
		if a == authority {
			return true
		}
	}
	return false
}

// IsActive reports whether the account may authenticate at the given time.
// All flags default to the active state, so freshly created principals pass.
func (p Principal) IsActive(now time.Time) bool {
	if p.Disabled || p.Locked {
		return false
	}
	if !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt) {
		return false
	}
	if !p.CredentialsExpireAt.IsZero() && now.After(p.CredentialsExpireAt) {
		return false
	}
	return true
}

// LogValue implements slog.LogValuer, redacting the credential digest so a
// principal logged as an attribute can never leak it.
func (p Principal) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", p.ID.String()),
		slog.String("username", p.Username),
		slog.String("role", p.Role.String()),
	)
}

// MarshalJSON serializes the principal without the credential digest.
func (p Principal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          uuid.UUID `json:"id"`
		Username    string    `json:"username"`
		DisplayName string    `json:"display_name,omitempty"`
		Role        string    `json:"role"`
		CreatedAt   time.Time `json:"created_at"`
	}{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Role:        p.Role.String(),
		CreatedAt:   p.CreatedAt,
	})
}
