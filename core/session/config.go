package session

import (
	"io"
	"log/slog"
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// TTL is the idle timeout: a session unused for longer than this is expired.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// TouchInterval is the minimum time between activity updates
	// (0 = update on every access).
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"5m"`

	logger *slog.Logger
}

func defaultConfig() *Config {
	return &Config{
		TTL:           24 * time.Hour,
		TouchInterval: 5 * time.Minute,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithTTL sets the session idle timeout.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithTouchInterval sets the minimum time between session activity updates.
// This throttles storage writes; set to 0 to slide expiration on every access.
func WithTouchInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval >= 0 {
			c.TouchInterval = interval
		}
	}
}

// WithLogger sets the structured logger for session lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
