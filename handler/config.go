package handler

import (
	"io"
	"log/slog"
)

// Config holds the redirect targets of the authentication surface.
type Config struct {
	// SuccessURL is where a successful login lands (default "/").
	SuccessURL string `env:"AUTH_SUCCESS_URL" envDefault:"/"`
	// LoginURL is the login page path (default "/auth/login").
	LoginURL string `env:"AUTH_LOGIN_URL" envDefault:"/auth/login"`
	// LogoutURL is where a logout redirects (default "/").
	LogoutURL string `env:"AUTH_LOGOUT_URL" envDefault:"/"`
	// SignupURL is the registration page path (default "/user/signup").
	SignupURL string `env:"AUTH_SIGNUP_URL" envDefault:"/user/signup"`
	// FailureURL is the failure display path that receives the encoded
	// message (default "/auth/fail").
	FailureURL string `env:"AUTH_FAILURE_URL" envDefault:"/auth/fail"`

	logger *slog.Logger
}

func defaultConfig() *Config {
	return &Config{
		SuccessURL: "/",
		LoginURL:   "/auth/login",
		LogoutURL:  "/",
		SignupURL:  "/user/signup",
		FailureURL: "/auth/fail",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option is a functional option for configuring the handlers.
type Option func(*Config)

// WithSuccessURL sets the post-login redirect target.
func WithSuccessURL(u string) Option {
	return func(c *Config) {
		if u != "" {
			c.SuccessURL = u
		}
	}
}

// WithLoginURL sets the login page path.
func WithLoginURL(u string) Option {
	return func(c *Config) {
		if u != "" {
			c.LoginURL = u
		}
	}
}

// WithLogoutURL sets the post-logout redirect target.
func WithLogoutURL(u string) Option {
	return func(c *Config) {
		if u != "" {
			c.LogoutURL = u
		}
	}
}

// WithSignupURL sets the registration page path.
func WithSignupURL(u string) Option {
	return func(c *Config) {
		if u != "" {
			c.SignupURL = u
		}
	}
}

// WithFailureURL sets the failure display path.
func WithFailureURL(u string) Option {
	return func(c *Config) {
		if u != "" {
			c.FailureURL = u
		}
	}
}

// WithLogger sets the structured logger for the handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
