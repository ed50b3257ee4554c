package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLength is the bcrypt input limit; longer inputs are rejected
// instead of silently truncated.
const maxPasswordLength = 72

// Hasher produces and verifies salted, adaptively-costed bcrypt digests.
// The zero value is not usable; construct with New.
type Hasher struct {
	cost int
}

// New creates a hasher with the configured cost factor.
// The default cost is bcrypt.DefaultCost, tunable upward as hardware improves.
func New(opts ...Option) *Hasher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Hasher{cost: cfg.Cost}
}

// Hash returns the digest of the plaintext. Each call salts independently, so
// two hashes of the same input differ while both verify.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the stored digest.
// A mismatch is a normal false, never an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Cost returns the configured cost factor.
func (h *Hasher) Cost() int {
	return h.cost
}
