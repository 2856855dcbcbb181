// pkg/memcache/geo_cache.go
package memcache

import (
	"sync"
	"time"
)

// GeoCache memoizes geocoding lookups by query string so one slow Nominatim
// round-trip per place is the worst case, not one per travel leg.
type GeoCache interface {
	Set(query string, lat, lng float64, ttl time.Duration)
	Get(query string) (lat, lng float64, ok bool)

	// SetMiss records a failed lookup so we do not hammer the geocoder with
	// queries that already came back empty.
	SetMiss(query string, ttl time.Duration)
	IsMiss(query string) bool
}

type geoEntry struct {
	lat, lng  float64
	miss      bool
	expiresAt time.Time
}

type geoCache struct {
	mu   sync.RWMutex
	data map[string]geoEntry
}

func NewGeoCache() GeoCache {
	return &geoCache{data: make(map[string]geoEntry)}
}

func (c *geoCache) Set(query string, lat, lng float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[query] = geoEntry{lat: lat, lng: lng, expiresAt: time.Now().Add(ttl)}
}

func (c *geoCache) Get(query string) (float64, float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[query]
	if !ok || e.miss || time.Now().After(e.expiresAt) {
		return 0, 0, false
	}
	return e.lat, e.lng, true
}

func (c *geoCache) SetMiss(query string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[query] = geoEntry{miss: true, expiresAt: time.Now().Add(ttl)}
}

func (c *geoCache) IsMiss(query string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[query]
	return ok && e.miss && time.Now().Before(e.expiresAt)
}
