package entity

import (
	"time"
)

// User is the identity aggregate. Passwords are stored as argon2id
// hashes in PasswordHash. Immutable after registration.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
