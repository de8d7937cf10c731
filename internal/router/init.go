package router

import (
	"github.com/zonecast/zonecast/internal/container"
	handlers "github.com/zonecast/zonecast/internal/interface/http"
	"github.com/zonecast/zonecast/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	authHandler := handlers.NewAuthHandler(pool, container.GetJWT(), logger)
	zoneHandler := handlers.NewZoneHandler(pool, container.GetWeatherGateway(), logger)
	cityHandler := handlers.NewCityHandler(container.GetCityGateway(), logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewZoneModule(zoneHandler))
	r.Add(modules.NewCityModule(cityHandler))
}
