package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/domain/entity"
)

// ErrProviderUnavailable covers every weather fetch failure: transport
// errors, non-2xx statuses, and malformed bodies. Callers get a single
// taxonomy and no retry.
var ErrProviderUnavailable = errors.New("weather provider unavailable")

// WeatherClient fetches current conditions from the Open-Meteo forecast API.
type WeatherClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewWeatherClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *WeatherClient {
	return &WeatherClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchCurrent issues one provider call for the given coordinates. Any
// failure surfaces as ErrProviderUnavailable; the caller must treat it as
// terminal for the current request.
func (c *WeatherClient) FetchCurrent(ctx context.Context, lat, lon float64) (entity.WeatherReading, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return entity.WeatherReading{}, ErrProviderUnavailable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("weather fetch failed")
		return entity.WeatherReading{}, ErrProviderUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WithField("status", resp.StatusCode).Warn("weather provider returned non-2xx")
		return entity.WeatherReading{}, ErrProviderUnavailable
	}

	var body struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.WithError(err).Warn("weather provider returned malformed body")
		return entity.WeatherReading{}, ErrProviderUnavailable
	}
	if body.CurrentWeather == nil {
		c.logger.Warn("weather provider response missing current_weather")
		return entity.WeatherReading{}, ErrProviderUnavailable
	}

	return entity.WeatherReading{
		TemperatureCelsius: body.CurrentWeather.Temperature,
		FetchedAt:          time.Now().UTC(),
	}, nil
}
