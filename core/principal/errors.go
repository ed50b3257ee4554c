package principal

import "errors"

var (
	// ErrMissingUsername is returned when creating a principal without a login identifier.
	ErrMissingUsername = errors.New("username is required")
	// ErrMissingPasswordHash is returned when creating a principal without a credential digest.
	ErrMissingPasswordHash = errors.New("password hash is required")
	// ErrInvalidRole is returned for a role outside the known set.
	ErrInvalidRole = errors.New("invalid principal role")
)
