package application

import (
	"context"

	"github.com/zonecast/zonecast/internal/domain/entity"
)

// WeatherGateway fetches a current reading for a coordinate pair. It fails
// loudly: any provider problem is an error the workflow must surface.
type WeatherGateway interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (entity.WeatherReading, error)
}

// CityGateway resolves fuzzy city name searches. It degrades silently:
// failures come back as an empty result set, never an error.
type CityGateway interface {
	Search(ctx context.Context, query string) []entity.CityResult
}
