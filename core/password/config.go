package password

import "golang.org/x/crypto/bcrypt"

// Config holds hasher configuration.
type Config struct {
	// Cost is the bcrypt work factor. Values outside the valid bcrypt range
	// are clamped by the option that sets them.
	Cost int `env:"PASSWORD_HASH_COST" envDefault:"10"`
}

func defaultConfig() *Config {
	return &Config{
		Cost: bcrypt.DefaultCost,
	}
}

// Option is a functional option for configuring the hasher.
type Option func(*Config)

// WithCost sets the bcrypt cost factor. Values below the bcrypt minimum fall
// back to the default; values above the maximum are capped.
func WithCost(cost int) Option {
	return func(c *Config) {
		switch {
		case cost < bcrypt.MinCost:
			c.Cost = bcrypt.DefaultCost
		case cost > bcrypt.MaxCost:
			c.Cost = bcrypt.MaxCost
		default:
			c.Cost = cost
		}
	}
}
