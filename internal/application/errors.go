package application

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrNoChanges          = errors.New("no changes made")
)
