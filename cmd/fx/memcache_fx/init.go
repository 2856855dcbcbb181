package memcache_fx

import (
	"go.uber.org/fx"
	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(provideGeoCache)

func provideGeoCache() mem.GeoCache {
	return mem.NewGeoCache()
}
