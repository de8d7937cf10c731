package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zonecast/zonecast/internal/container"
	handlers "github.com/zonecast/zonecast/internal/interface/http"
	"github.com/zonecast/zonecast/internal/interface/middleware"
)

// ZoneModule wires the tenant-scoped zone routes. Everything here requires
// a bearer token.
type ZoneModule struct {
	Handler *handlers.ZoneHandler
}

func NewZoneModule(h *handlers.ZoneHandler) *ZoneModule {
	return &ZoneModule{Handler: h}
}

func (m *ZoneModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/zones", m.Handler.List)
		auth.POST("/zones", m.Handler.Create)
		auth.GET("/zones/:id", m.Handler.Get)
		auth.PUT("/zones/:id", m.Handler.Update)
		auth.DELETE("/zones/:id", m.Handler.Delete)
		auth.POST("/zones/:id/refresh", m.Handler.Refresh)
	}
}
