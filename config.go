package authkit

import (
	"io"
	"log/slog"
	"time"
)

// AuthConfig holds authenticator configuration.
type AuthConfig struct {
	// LookupTimeout bounds the credential store call during login and
	// registration. A timeout classifies as an account lookup error and is
	// not retried here; retries belong to the store adapter.
	LookupTimeout time.Duration `env:"AUTH_LOOKUP_TIMEOUT" envDefault:"5s"`

	logger *slog.Logger
}

func defaultAuthConfig() *AuthConfig {
	return &AuthConfig{
		LookupTimeout: 5 * time.Second,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// AuthOption is a functional option for configuring the authenticator.
type AuthOption func(*AuthConfig)

// WithLookupTimeout sets the credential store call deadline.
func WithLookupTimeout(d time.Duration) AuthOption {
	return func(c *AuthConfig) {
		if d > 0 {
			c.LookupTimeout = d
		}
	}
}

// WithLogger sets the structured logger for authentication events.
// Plaintext passwords and credential hashes are never logged.
func WithLogger(logger *slog.Logger) AuthOption {
	return func(c *AuthConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
