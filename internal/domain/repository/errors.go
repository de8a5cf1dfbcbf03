package repository

import "errors"

// ErrDuplicateKey is returned by store implementations when an insert or
// update violates a unique constraint (doctor email/username).
var ErrDuplicateKey = errors.New("duplicate unique field")
