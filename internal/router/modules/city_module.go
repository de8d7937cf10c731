package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zonecast/zonecast/internal/container"
	handlers "github.com/zonecast/zonecast/internal/interface/http"
	"github.com/zonecast/zonecast/internal/interface/middleware"
)

type CityModule struct {
	Handler *handlers.CityHandler
}

func NewCityModule(h *handlers.CityHandler) *CityModule {
	return &CityModule{Handler: h}
}

func (m *CityModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/cities/search", m.Handler.Search)
	}
}
