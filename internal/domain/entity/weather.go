package entity

import "time"

// WeatherReading is the transient result of one provider call. It is never
// persisted standalone; it is immediately folded into a Zone.
type WeatherReading struct {
	TemperatureCelsius float64
	FetchedAt          time.Time
}

// CityResult is one fuzzy geocoding match.
type CityResult struct {
	Name        string  `json:"name"`
	CountryCode *string `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
