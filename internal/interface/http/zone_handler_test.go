package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/zonecast/zonecast/pkg/validation"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Validation and path parsing run before any storage is touched, so these
// tests work with a nil pool: reaching the database would panic and fail
// them loudly.
func setupZoneRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	h := NewZoneHandler(nil, nil, testLogger())
	r := gin.New()
	r.POST("/zones", h.Create)
	r.PUT("/zones/:id", h.Update)
	r.GET("/zones/:id", h.Get)
	return r
}

func TestCreateZoneRejectsOutOfRangeLatitude(t *testing.T) {
	r := setupZoneRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/zones",
		strings.NewReader(`{"name":"Impossible Zone","latitude":999.0,"longitude":0.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude")
}

func TestCreateZoneRejectsOutOfRangeLongitude(t *testing.T) {
	r := setupZoneRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/zones",
		strings.NewReader(`{"name":"Zone","latitude":0.0,"longitude":-200.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateZoneRejectsMissingName(t *testing.T) {
	r := setupZoneRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/zones",
		strings.NewReader(`{"latitude":10.0,"longitude":10.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestZoneRequestAcceptsZeroCoordinates(t *testing.T) {
	// 0,0 is a valid location; the pointer fields must not treat it as
	// missing.
	gin.SetMode(gin.TestMode)
	validation.Init()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/zones",
		strings.NewReader(`{"name":"Null Island","latitude":0.0,"longitude":0.0}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req zoneRequest
	assert.NoError(t, c.ShouldBindJSON(&req))
	assert.Equal(t, 0.0, *req.Latitude)
	assert.Equal(t, 0.0, *req.Longitude)
}

func TestCreateZoneRejectsLongCountryCode(t *testing.T) {
	r := setupZoneRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/zones",
		strings.NewReader(`{"name":"Zone","country_code":"FRA","latitude":1.0,"longitude":1.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestZoneNonNumericIDIsNotFound(t *testing.T) {
	r := setupZoneRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/zones/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateZoneRejectsInvalidPayload(t *testing.T) {
	r := setupZoneRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/zones/1",
		strings.NewReader(`{"name":"","latitude":10.0,"longitude":10.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
