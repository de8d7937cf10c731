package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zonecast/zonecast/internal/domain/entity"
)

type stubCityGateway struct {
	results []entity.CityResult
	queries []string
}

func (s *stubCityGateway) Search(ctx context.Context, query string) []entity.CityResult {
	s.queries = append(s.queries, query)
	if s.results == nil {
		return []entity.CityResult{}
	}
	return s.results
}

func setupCityRouter(gw *stubCityGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cities/search", NewCityHandler(gw, testLogger()).Search)
	return r
}

func TestCitySearchReturnsResults(t *testing.T) {
	fr := "FR"
	gw := &stubCityGateway{results: []entity.CityResult{
		{Name: "Paris", CountryCode: &fr, Latitude: 48.8566, Longitude: 2.3522},
	}}
	r := setupCityRouter(gw)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities/search?q=Paris", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[{"name":"Paris","country_code":"FR","latitude":48.8566,"longitude":2.3522}]}`, w.Body.String())
	assert.Equal(t, []string{"Paris"}, gw.queries)
}

func TestCitySearchEmptyIsStillOK(t *testing.T) {
	// Upstream degradation and empty matches alike produce a successful
	// empty response, never an error status.
	r := setupCityRouter(&stubCityGateway{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities/search?q=Nowhereville", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
}
