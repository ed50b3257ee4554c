package password

import "errors"

var (
	// ErrEmptyPassword is returned when hashing an empty plaintext.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrPasswordTooLong is returned when the plaintext exceeds the bcrypt input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	// ErrHashingFailed is returned when digest generation fails.
	ErrHashingFailed = errors.New("failed to hash password")
)
