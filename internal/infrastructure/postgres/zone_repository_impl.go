package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/zonecast/zonecast/internal/domain/entity"
	"github.com/zonecast/zonecast/internal/domain/repository"
)

// ZoneRepository is bound to one owning user; every statement carries a
// user_id predicate so cross-tenant rows are invisible to it.
type ZoneRepository struct {
	db     Querier
	userID int64
}

func NewZoneRepository(db Querier, userID int64) *ZoneRepository {
	return &ZoneRepository{db: db, userID: userID}
}

func (r *ZoneRepository) Create(ctx context.Context, z *entity.Zone) error {
	// Ownership comes from the repository scope, never from the caller.
	z.UserID = r.userID

	row := r.db.QueryRow(ctx, `
		INSERT INTO zones (user_id, name, country_code, latitude, longitude, temperature, last_fetched_at, weather_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, z.UserID, z.Name, z.CountryCode, z.Latitude, z.Longitude, z.Temperature, z.LastFetchedAt, z.WeatherStatus)

	return row.Scan(&z.ID)
}

func (r *ZoneRepository) GetByID(ctx context.Context, id int64) (*entity.Zone, error) {
	z := &entity.Zone{}
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, country_code, latitude, longitude, temperature, last_fetched_at, weather_status
		FROM zones
		WHERE id = $1 AND user_id = $2
	`, id, r.userID)

	if err := scanZone(row, z); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return z, nil
}

func (r *ZoneRepository) GetAll(ctx context.Context) ([]entity.Zone, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, country_code, latitude, longitude, temperature, last_fetched_at, weather_status
		FROM zones
		WHERE user_id = $1
		ORDER BY id
	`, r.userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]entity.Zone, 0)
	for rows.Next() {
		var z entity.Zone
		if err := scanZone(rows, &z); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *ZoneRepository) Update(ctx context.Context, z *entity.Zone) error {
	res, err := r.db.Exec(ctx, `
		UPDATE zones
		SET name = $1, country_code = $2, latitude = $3, longitude = $4, temperature = $5, last_fetched_at = $6, weather_status = $7
		WHERE id = $8 AND user_id = $9
	`, z.Name, z.CountryCode, z.Latitude, z.Longitude, z.Temperature, z.LastFetchedAt, z.WeatherStatus, z.ID, r.userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ZoneRepository) Delete(ctx context.Context, z *entity.Zone) error {
	res, err := r.db.Exec(ctx, `
		DELETE FROM zones
		WHERE id = $1 AND user_id = $2
	`, z.ID, r.userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanZone(row pgx.Row, z *entity.Zone) error {
	return row.Scan(&z.ID, &z.UserID, &z.Name, &z.CountryCode, &z.Latitude, &z.Longitude,
		&z.Temperature, &z.LastFetchedAt, &z.WeatherStatus)
}

var _ repository.ZoneRepository = (*ZoneRepository)(nil)
