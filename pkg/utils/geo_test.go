package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"wayfare/pkg/utils"
)

func TestHaversineKm_samePoint(t *testing.T) {
	require.Zero(t, utils.HaversineKm(48.8566, 2.3522, 48.8566, 2.3522))
}

// One degree of latitude is about 111.2 km everywhere on the globe.
func TestHaversineKm_oneDegreeLatitude(t *testing.T) {
	d := utils.HaversineKm(0, 0, 1, 0)
	require.InDelta(t, 111.2, d, 0.5)
}

func TestHaversineKm_symmetric(t *testing.T) {
	a := utils.HaversineKm(41.9028, 12.4964, 45.4642, 9.1900)
	b := utils.HaversineKm(45.4642, 9.1900, 41.9028, 12.4964)
	require.InDelta(t, a, b, 1e-9)
	require.Greater(t, a, 400.0)
	require.Less(t, a, 600.0)
}
