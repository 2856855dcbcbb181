package geo_fx

import (
	"go.uber.org/fx"
	"wayfare/internal/services"
	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(provideGeocodeService)

func provideGeocodeService(cache mem.GeoCache) services.GeocodeServiceInterface {
	return services.NewGeocodeService(cache)
}
