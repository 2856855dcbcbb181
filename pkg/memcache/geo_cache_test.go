package memcache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"wayfare/pkg/memcache"
)

func TestGeoCache_setAndGet(t *testing.T) {
	cache := memcache.NewGeoCache()
	cache.Set("pantheon, rome", 41.8986, 12.4769, time.Minute)

	lat, lng, ok := cache.Get("pantheon, rome")
	require.True(t, ok)
	require.InDelta(t, 41.8986, lat, 1e-9)
	require.InDelta(t, 12.4769, lng, 1e-9)
}

func TestGeoCache_missUnknownKey(t *testing.T) {
	cache := memcache.NewGeoCache()
	_, _, ok := cache.Get("nowhere")
	require.False(t, ok)
}

func TestGeoCache_expiry(t *testing.T) {
	cache := memcache.NewGeoCache()
	cache.Set("pantheon, rome", 41.8986, 12.4769, -time.Second)

	_, _, ok := cache.Get("pantheon, rome")
	require.False(t, ok)
}

func TestGeoCache_negativeEntries(t *testing.T) {
	cache := memcache.NewGeoCache()
	cache.SetMiss("atlantis", time.Minute)

	require.True(t, cache.IsMiss("atlantis"))
	_, _, ok := cache.Get("atlantis")
	require.False(t, ok)

	// A successful lookup overwrites the negative entry.
	cache.Set("atlantis", 1, 2, time.Minute)
	require.False(t, cache.IsMiss("atlantis"))
	_, _, ok = cache.Get("atlantis")
	require.True(t, ok)
}
