package repository

import (
	"context"

	"github.com/zonecast/zonecast/internal/domain/entity"
)

// ZoneRepository is tenant-scoped data access: implementations are bound to
// one owning user at construction time and every query predicate includes
// that owner. A zone belonging to another user is indistinguishable from a
// zone that does not exist.
type ZoneRepository interface {
	// Create persists a new zone, forcibly stamping the bound user id over
	// whatever the caller supplied.
	Create(ctx context.Context, z *entity.Zone) error
	// GetByID returns (nil, nil) when the id does not exist or belongs to a
	// different owner.
	GetByID(ctx context.Context, id int64) (*entity.Zone, error)
	// GetAll returns the tenant's full collection, unpaginated.
	GetAll(ctx context.Context) ([]entity.Zone, error)
	Update(ctx context.Context, z *entity.Zone) error
	Delete(ctx context.Context, z *entity.Zone) error
}
