package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/application"
	"github.com/zonecast/zonecast/internal/domain/entity"
	"github.com/zonecast/zonecast/internal/infrastructure/postgres"
	"github.com/zonecast/zonecast/internal/interface/middleware"
	"github.com/zonecast/zonecast/pkg/response"
	"github.com/zonecast/zonecast/pkg/validation"
)

type ZoneHandler struct {
	Pool    *pgxpool.Pool
	Weather application.WeatherGateway
	Logger  *logrus.Logger
}

func NewZoneHandler(pool *pgxpool.Pool, weather application.WeatherGateway, logger *logrus.Logger) *ZoneHandler {
	return &ZoneHandler{Pool: pool, Weather: weather, Logger: logger}
}

// zoneRequest covers create and full-replace update. Coordinates are
// pointers so that 0 passes the required check; bounds are validated before
// any workflow logic runs.
type zoneRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	CountryCode *string  `json:"country_code" binding:"omitempty,len=2"`
	Latitude    *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

func (r zoneRequest) input() application.ZoneInput {
	return application.ZoneInput{
		Name:        r.Name,
		CountryCode: r.CountryCode,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
	}
}

type zoneResponse struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	CountryCode   *string              `json:"country_code"`
	Latitude      float64              `json:"latitude"`
	Longitude     float64              `json:"longitude"`
	Temperature   *float64             `json:"temperature"`
	LastFetchedAt *time.Time           `json:"last_fetched_at"`
	WeatherStatus entity.WeatherStatus `json:"weather_status"`
}

func toZoneResponse(z *entity.Zone) zoneResponse {
	return zoneResponse{
		ID:            z.ID,
		Name:          z.Name,
		CountryCode:   z.CountryCode,
		Latitude:      z.Latitude,
		Longitude:     z.Longitude,
		Temperature:   z.Temperature,
		LastFetchedAt: z.LastFetchedAt,
		WeatherStatus: z.WeatherStatus,
	}
}

// List handles GET /zones
func (h *ZoneHandler) List(c *gin.Context) {
	var zones []entity.Zone
	err := h.inTenantTx(c, func(svc *application.ZoneService) error {
		var err error
		zones, err = svc.List(c.Request.Context())
		return err
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]zoneResponse, 0, len(zones))
	for i := range zones {
		out = append(out, toZoneResponse(&zones[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /zones
func (h *ZoneHandler) Create(c *gin.Context) {
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	var z *entity.Zone
	err := h.inTenantTx(c, func(svc *application.ZoneService) error {
		var err error
		z, err = svc.Create(c.Request.Context(), req.input())
		return err
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toZoneResponse(z))
}

// Get handles GET /zones/:id
func (h *ZoneHandler) Get(c *gin.Context) {
	id, ok := zoneID(c)
	if !ok {
		return
	}
	var z *entity.Zone
	err := h.inTenantTx(c, func(svc *application.ZoneService) error {
		var err error
		z, err = svc.Get(c.Request.Context(), id)
		return err
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(z))
}

// Update handles PUT /zones/:id
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := zoneID(c)
	if !ok {
		return
	}
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	var z *entity.Zone
	err := h.inTenantTx(c, func(svc *application.ZoneService) error {
		var err error
		z, err = svc.Update(c.Request.Context(), id, req.input())
		return err
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(z))
}

// Delete handles DELETE /zones/:id
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, ok := zoneID(c)
	if !ok {
		return
	}
	err := h.inTenantTx(c, func(svc *application.ZoneService) error {
		return svc.Delete(c.Request.Context(), id)
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Refresh handles POST /zones/:id/refresh
func (h *ZoneHandler) Refresh(c *gin.Context) {
	id, ok := zoneID(c)
	if !ok {
		return
	}
	var z *entity.Zone
	err := h.inTenantTx(c, func(svc *application.ZoneService) error {
		var err error
		z, err = svc.Refresh(c.Request.Context(), id)
		return err
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(z))
}

// inTenantTx runs fn with a zone service bound to the authenticated user
// inside a per-request transaction.
func (h *ZoneHandler) inTenantTx(c *gin.Context, fn func(svc *application.ZoneService) error) error {
	uid := middleware.UserID(c)
	return postgres.WithTx(c.Request.Context(), h.Pool, func(tx pgx.Tx) error {
		svc := application.NewZoneService(postgres.NewZoneRepository(tx, uid), h.Weather, h.Logger)
		return fn(svc)
	})
}

func (h *ZoneHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrZoneNotFound):
		response.Error(c, http.StatusNotFound, "zone not found", nil)
	case errors.Is(err, application.ErrWeatherUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "weather data unavailable", nil)
	default:
		h.Logger.WithError(err).Error("zone request failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// zoneID parses the :id path segment. A non-numeric id cannot name any zone,
// so it reports not found rather than a validation error.
func zoneID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "zone not found", nil)
		return 0, false
	}
	return id, true
}
