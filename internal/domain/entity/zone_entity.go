package entity

import (
	"time"
)

// WeatherStatus is the tri-state freshness flag on a Zone.
type WeatherStatus string

const (
	WeatherNeverFetched WeatherStatus = "never_fetched"
	// WeatherCached is declared for a future staleness policy; nothing
	// currently transitions into it.
	WeatherCached WeatherStatus = "cached"
	WeatherFresh  WeatherStatus = "fresh"
)

// Zone is a user-owned named geographic point with optional cached weather.
// UserID is immutable after creation and every query touching zones is
// filtered by it.
type Zone struct {
	ID            int64
	UserID        int64
	Name          string
	CountryCode   *string
	Latitude      float64
	Longitude     float64
	Temperature   *float64
	LastFetchedAt *time.Time
	WeatherStatus WeatherStatus
}

// ResetWeather clears cached weather fields. A location change invalidates
// any previous reading.
func (z *Zone) ResetWeather() {
	z.Temperature = nil
	z.LastFetchedAt = nil
	z.WeatherStatus = WeatherNeverFetched
}

// ApplyReading folds a gateway reading into the zone and marks it fresh.
func (z *Zone) ApplyReading(r WeatherReading) {
	t := r.TemperatureCelsius
	at := r.FetchedAt
	z.Temperature = &t
	z.LastFetchedAt = &at
	z.WeatherStatus = WeatherFresh
}
