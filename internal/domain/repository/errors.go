package repository

import "errors"

// ErrDuplicateUsername reports a username uniqueness violation on insert.
var ErrDuplicateUsername = errors.New("duplicate username")
