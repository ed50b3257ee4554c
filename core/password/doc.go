// Package password wraps bcrypt for credential hashing and verification.
//
// Hash salts every digest independently, so hashing the same plaintext twice
// yields different strings that both verify. Verify never returns an error for
// a mismatch; failure to match is an expected outcome, not a fault.
//
// The cost factor is configurable via WithCost and defaults to
// bcrypt.DefaultCost, which is adequate against offline brute force at
// deployment time; raise it as hardware improves.
package password
