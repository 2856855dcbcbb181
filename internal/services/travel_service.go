package services

import (
	"context"

	"wayfare/pkg/utils"
)

const (
	minTravelMinutes     = 5.0
	maxTravelMinutes     = 45.0
	defaultTravelMinutes = 25.0
)

// TravelEstimator computes walking-scale travel times between the places of
// a single itinerary request. Coordinates are resolved once per place into a
// side table keyed by place id, so the estimator never reaches back into the
// schedule entries themselves.
type TravelEstimator struct {
	geocoder GeocodeServiceInterface
	city     string
	country  string
	coords   map[string]coordEntry
}

type coordEntry struct {
	lat, lng float64
}

func NewTravelEstimator(geocoder GeocodeServiceInterface, city, country string) *TravelEstimator {
	return &TravelEstimator{
		geocoder: geocoder,
		city:     city,
		country:  country,
		coords:   make(map[string]coordEntry),
	}
}

// Register resolves a place's coordinates into the side table. Embedded
// coordinates win; otherwise the geocoder gets one best-effort shot. Places
// that stay unresolved fall back to the default leg estimate.
func (t *TravelEstimator) Register(ctx context.Context, sp SchedulePlace) {
	if _, ok := t.coords[sp.ID()]; ok {
		return
	}
	if lat, lng, ok := sp.Coordinates(); ok {
		t.coords[sp.ID()] = coordEntry{lat: lat, lng: lng}
		return
	}
	if t.geocoder == nil {
		return
	}
	if lat, lng, ok := t.geocoder.GeocodePlace(ctx, sp.Name(), t.city, t.country); ok {
		t.coords[sp.ID()] = coordEntry{lat: lat, lng: lng}
	}
}

// Known reports whether a place has resolved coordinates.
func (t *TravelEstimator) Known(placeID string) bool {
	_, ok := t.coords[placeID]
	return ok
}

func (t *TravelEstimator) Position(placeID string) (lat, lng float64, ok bool) {
	e, ok := t.coords[placeID]
	if !ok {
		return 0, 0, false
	}
	return e.lat, e.lng, true
}

func (t *TravelEstimator) DistanceKm(fromID, toID string) (float64, bool) {
	from, ok := t.coords[fromID]
	if !ok {
		return 0, false
	}
	to, ok := t.coords[toID]
	if !ok {
		return 0, false
	}
	return utils.HaversineKm(from.lat, from.lng, to.lat, to.lng), true
}

// EstimateMinutes returns the travel time between two places, including a
// congestion buffer, clamped to [5, 45] minutes. Unknown coordinates on
// either side yield the flat default.
func (t *TravelEstimator) EstimateMinutes(fromID, toID string) float64 {
	km, ok := t.DistanceKm(fromID, toID)
	if !ok {
		return defaultTravelMinutes
	}
	return minutesForDistance(km)
}

// minutesForDistance models short hops as walking and longer stretches as
// transit. Speeds are km/h.
func minutesForDistance(km float64) float64 {
	var speed float64
	switch {
	case km <= 0.5:
		speed = 4
	case km <= 2:
		speed = 5
	case km <= 5:
		speed = 6
	default:
		speed = 20
	}

	minutes := km / speed * 60

	buffer := 2 * km
	if buffer > 10 {
		buffer = 10
	}
	minutes += buffer

	if minutes < minTravelMinutes {
		minutes = minTravelMinutes
	}
	if minutes > maxTravelMinutes {
		minutes = maxTravelMinutes
	}
	return minutes
}
