package repository

import (
	"context"

	"github.com/zonecast/zonecast/internal/domain/entity"
)

// UserRepository manages global user identities (not tenant-scoped).
type UserRepository interface {
	// Create persists a new identity. The database uniqueness constraint on
	// username is the authoritative duplicate guard; violations surface as
	// application.ErrUsernameTaken from the implementation.
	Create(ctx context.Context, u *entity.User) error
	// GetByUsername returns (nil, nil) when no such user exists.
	// Case sensitivity follows the storage collation.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
