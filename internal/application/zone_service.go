package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/domain/entity"
	"github.com/zonecast/zonecast/internal/domain/repository"
)

// ZoneService drives the zone lifecycle for one tenant. The repository it
// holds is already bound to the owning user, so a lookup miss means "never
// existed" and "belongs to someone else" alike - both surface as
// ErrZoneNotFound.
type ZoneService struct {
	Repo    repository.ZoneRepository
	Weather WeatherGateway
	Logger  *logrus.Logger
}

func NewZoneService(repo repository.ZoneRepository, weather WeatherGateway, logger *logrus.Logger) *ZoneService {
	return &ZoneService{Repo: repo, Weather: weather, Logger: logger}
}

// ZoneInput carries the caller-editable zone fields.
type ZoneInput struct {
	Name        string
	CountryCode *string
	Latitude    float64
	Longitude   float64
}

func (s *ZoneService) Create(ctx context.Context, in ZoneInput) (*entity.Zone, error) {
	z := &entity.Zone{
		Name:          in.Name,
		CountryCode:   in.CountryCode,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		WeatherStatus: entity.WeatherNeverFetched,
	}
	if err := s.Repo.Create(ctx, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (s *ZoneService) List(ctx context.Context) ([]entity.Zone, error) {
	return s.Repo.GetAll(ctx)
}

func (s *ZoneService) Get(ctx context.Context, id int64) (*entity.Zone, error) {
	return s.getOwned(ctx, id)
}

// Update replaces name/coordinates wholesale and invalidates any cached
// weather, whether or not the coordinates actually changed.
func (s *ZoneService) Update(ctx context.Context, id int64, in ZoneInput) (*entity.Zone, error) {
	z, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	z.Name = in.Name
	z.CountryCode = in.CountryCode
	z.Latitude = in.Latitude
	z.Longitude = in.Longitude
	z.ResetWeather()

	if err := s.Repo.Update(ctx, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (s *ZoneService) Delete(ctx context.Context, id int64) error {
	z, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, z)
}

// Refresh fetches current weather and folds it into the zone. On gateway
// failure the zone is left untouched and the unavailability propagates; the
// never_fetched -> fresh transition happens only on success.
func (s *ZoneService) Refresh(ctx context.Context, id int64) (*entity.Zone, error) {
	z, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	reading, err := s.Weather.FetchCurrent(ctx, z.Latitude, z.Longitude)
	if err != nil {
		s.Logger.WithError(err).WithField("zone_id", z.ID).Warn("weather refresh failed")
		return nil, ErrWeatherUnavailable
	}

	z.ApplyReading(reading)
	if err := s.Repo.Update(ctx, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (s *ZoneService) getOwned(ctx context.Context, id int64) (*entity.Zone, error) {
	z, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, ErrZoneNotFound
	}
	return z, nil
}
