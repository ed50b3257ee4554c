package userstore

import "errors"

var (
	// ErrNotFound is returned when no principal is registered under the identifier.
	ErrNotFound = errors.New("principal not found")
	// ErrDuplicate is returned when the identifier is already registered.
	ErrDuplicate = errors.New("principal already exists")
	// ErrQueryFailed is returned when the backing store errored during an operation.
	ErrQueryFailed = errors.New("user store query failed")
)
