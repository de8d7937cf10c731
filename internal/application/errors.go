package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrZoneNotFound       = errors.New("zone not found")
	ErrWeatherUnavailable = errors.New("weather data unavailable")
)
