package openmeteo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/domain/entity"
)

// maxCityResults caps how many geocoding matches a search returns.
const maxCityResults = 5

// GeocodingClient searches city names against the Open-Meteo geocoding API.
// Unlike the weather client it degrades silently: every failure yields an
// empty result set, because city search is a non-critical convenience.
type GeocodingClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewGeocodingClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *GeocodingClient {
	return &GeocodingClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Search returns up to maxCityResults fuzzy matches for query. Blank queries
// short-circuit without contacting the provider.
func (c *GeocodingClient) Search(ctx context.Context, query string) []entity.CityResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.CityResult{}
	}

	q := url.Values{}
	q.Set("name", query)
	q.Set("count", strconv.Itoa(maxCityResults))
	q.Set("language", "en")
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return []entity.CityResult{}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("city search request failed")
		return []entity.CityResult{}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WithField("status", resp.StatusCode).Warn("geocoding provider returned non-2xx")
		return []entity.CityResult{}
	}

	var body struct {
		Results []struct {
			Name        string  `json:"name"`
			CountryCode *string `json:"country_code"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.WithError(err).Warn("geocoding provider returned malformed body")
		return []entity.CityResult{}
	}

	results := body.Results
	if len(results) > maxCityResults {
		results = results[:maxCityResults]
	}
	out := make([]entity.CityResult, 0, len(results))
	for _, r := range results {
		out = append(out, entity.CityResult{
			Name:        r.Name,
			CountryCode: r.CountryCode,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		})
	}
	return out
}
