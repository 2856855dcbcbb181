package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"wayfare/internal/models/db_models"
	"wayfare/internal/services"
)

var morning = time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)

func candidate(p db_models.Place) services.SchedulePlace {
	return services.NewCandidate(p)
}

// A recognized world-class museum under relaxed pacing is always a full-day
// visit, whatever the caps say.
func TestEstimateVisitHours_worldClassMuseumRelaxedFloor(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:     "Louvre Museum",
		Category: "museum",
		Rating:   4.8,
	})
	hours := services.EstimateVisitHours(sp, services.StyleRelaxed, morning)
	require.GreaterOrEqual(t, hours, 6.0)
}

func TestEstimateVisitHours_worldClassFloorBeatsLateDayCap(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:     "Vatican Museums",
		Category: "museum",
		Rating:   4.9,
	})
	lateAfternoon := time.Date(2026, time.September, 7, 16, 30, 0, 0, time.UTC)
	hours := services.EstimateVisitHours(sp, services.StyleRelaxed, lateAfternoon)
	require.GreaterOrEqual(t, hours, 6.0)
}

func TestEstimateVisitHours_fountainIsQuick(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:     "Trevi Fountain",
		Category: "fountain",
	})
	hours := services.EstimateVisitHours(sp, services.StyleModerate, morning)
	require.LessOrEqual(t, hours, 1.0)
	require.GreaterOrEqual(t, hours, 0.25)
}

func TestEstimateVisitHours_durationHintWins(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:            "City Aquarium",
		Category:        "attraction",
		DurationMinutes: ptr(90),
	})
	hours := services.EstimateVisitHours(sp, services.StyleModerate, morning)
	require.InDelta(t, 1.5, hours, 1e-9)
}

// A hinted duration that undersells a top museum is boosted, then bounded by
// the moderate-pace major-museum cap.
func TestEstimateVisitHours_hintedMuseumBoosted(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:            "National Museum of Art",
		Category:        "museum",
		Rating:          4.8,
		Popularity:      2,
		Price:           "30€",
		DurationMinutes: ptr(60),
	})
	hours := services.EstimateVisitHours(sp, services.StyleModerate, morning)
	require.InDelta(t, 4.0, hours, 1e-9)
}

func TestEstimateVisitHours_lateDayCap(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:            "Harbor Cruise Terminal",
		Category:        "attraction",
		DurationMinutes: ptr(240),
	})
	lateAfternoon := time.Date(2026, time.September, 7, 16, 30, 0, 0, time.UTC)
	hours := services.EstimateVisitHours(sp, services.StyleModerate, lateAfternoon)
	require.InDelta(t, 2.0, hours, 1e-9)
}

func TestEstimateVisitHours_acceleratedCap(t *testing.T) {
	sp := candidate(db_models.Place{
		Name:       "Royal National Gallery Museum",
		Category:   "museum",
		Rating:     4.9,
		Popularity: 1,
	})
	hours := services.EstimateVisitHours(sp, services.StyleAccelerated, morning)
	require.LessOrEqual(t, hours, 2.5)
}

func TestEstimateVisitHours_unresolvedMustVisitDefaults(t *testing.T) {
	sp := services.NewMustVisit(db_models.MustVisitItem{
		PlaceID:   "abc123",
		PlaceName: "Hidden Courtyard",
	})
	hours := services.EstimateVisitHours(sp, services.StyleModerate, morning)
	require.GreaterOrEqual(t, hours, 0.25)
	require.LessOrEqual(t, hours, 3.5)
}
