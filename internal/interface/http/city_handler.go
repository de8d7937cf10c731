package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/application"
)

type CityHandler struct {
	Cities application.CityGateway
	Logger *logrus.Logger
}

func NewCityHandler(cities application.CityGateway, logger *logrus.Logger) *CityHandler {
	return &CityHandler{Cities: cities, Logger: logger}
}

// Search handles GET /cities/search?q=. Upstream failures never surface as
// errors here; the gateway already degrades to an empty result set.
func (h *CityHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results := h.Cities.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"results": results})
}
