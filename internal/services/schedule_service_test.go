package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"wayfare/internal/models/db_models"
	"wayfare/internal/services"
)

var tripDay = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func registerAll(est *services.TravelEstimator, places []services.SchedulePlace) {
	for _, p := range places {
		est.Register(context.Background(), p)
	}
}

func parseClock(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", clock)
	require.NoError(t, err)
	return parsed
}

func TestScheduleDay_emptyGroup(t *testing.T) {
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	activities, counter := services.ScheduleDay(est, nil, tripDay, services.StyleRelaxed, 7)
	require.Empty(t, activities)
	require.Equal(t, 7, counter)
}

func TestScheduleDay_startsAtNineAndTimesNonDecreasing(t *testing.T) {
	places := []services.SchedulePlace{
		placeAt("p1", "Pantheon", 41.8986, 12.4769),
		placeAt("p2", "Trevi Fountain", 41.9009, 12.4833),
	}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	activities, _ := services.ScheduleDay(est, places, tripDay, services.StyleModerate, 1)
	require.NotEmpty(t, activities)
	require.Equal(t, "09:00", activities[0].Time)

	prev := parseClock(t, activities[0].Time)
	for _, act := range activities[1:] {
		cur := parseClock(t, act.Time)
		require.False(t, cur.Before(prev), "activity %s at %s before %s", act.PlaceName, act.Time, prev.Format("15:04"))
		prev = cur
	}
}

func TestScheduleDay_noLateNightStarts(t *testing.T) {
	var places []services.SchedulePlace
	for i := 0; i < 12; i++ {
		places = append(places, services.NewCandidate(db_models.Place{
			PlaceID:  "p" + string(rune('a'+i)),
			Name:     "Grand National Gallery Museum",
			Category: "museum",
			Rating:   4.9,
		}))
	}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	activities, _ := services.ScheduleDay(est, places, tripDay, services.StyleRelaxed, 1)
	for _, act := range activities {
		start := parseClock(t, act.Time)
		require.Less(t, start.Hour(), 22, "%s starts at %s", act.PlaceName, act.Time)
	}
}

func TestScheduleDay_travelLegsEmittedAndCounted(t *testing.T) {
	places := []services.SchedulePlace{
		placeAt("p1", "Colosseum", 41.8902, 12.4922),
		placeAt("p2", "Vatican Museums", 41.9065, 12.4536),
	}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	activities, counter := services.ScheduleDay(est, places, tripDay, services.StyleAccelerated, 1)
	require.Greater(t, counter, 1)

	var travels []db_models.Activity
	for _, act := range activities {
		if strings.HasPrefix(act.PlaceID, "travel_") {
			travels = append(travels, act)
		}
	}
	require.NotEmpty(t, travels)
	require.Equal(t, "travel_001", travels[0].PlaceID)
	require.True(t, strings.HasPrefix(travels[0].PlaceName, "Travel to "))
	require.Contains(t, travels[0].Notes, "Travel time:")
}

func TestScheduleDay_counterContinuesAcrossDays(t *testing.T) {
	places := []services.SchedulePlace{
		placeAt("p1", "Colosseum", 41.8902, 12.4922),
		placeAt("p2", "Vatican Museums", 41.9065, 12.4536),
	}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	_, counter := services.ScheduleDay(est, places, tripDay, services.StyleAccelerated, 1)
	day2, counter2 := services.ScheduleDay(est, places, tripDay.AddDate(0, 0, 1), services.StyleAccelerated, counter)
	require.Greater(t, counter2, counter)

	for _, act := range day2 {
		if strings.HasPrefix(act.PlaceID, "travel_") {
			require.NotEqual(t, "travel_001", act.PlaceID)
		}
	}
}

func TestScheduleDay_relaxedDayGetsLunch(t *testing.T) {
	places := []services.SchedulePlace{
		placeAt("p1", "Pantheon", 41.8986, 12.4769),
		placeAt("p2", "Trevi Fountain", 41.9009, 12.4833),
		placeAt("p3", "Spanish Steps", 41.9057, 12.4823),
	}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	activities, _ := services.ScheduleDay(est, places, tripDay, services.StyleRelaxed, 1)

	var lunches int
	for _, act := range activities {
		if act.PlaceID == "break_lunch" {
			lunches++
			start := parseClock(t, act.Time)
			require.GreaterOrEqual(t, start.Hour(), 11)
			require.LessOrEqual(t, start.Hour(), 13)
		}
	}
	require.Equal(t, 1, lunches)
}

func TestScheduleDay_closedPlaceShiftedToOpening(t *testing.T) {
	hours := map[string]string{"Monday": "11:00 AM - 7:00 PM"}
	places := []services.SchedulePlace{
		services.NewCandidate(db_models.Place{
			PlaceID:      "p1",
			Name:         "Palazzo Exhibition Hall",
			Category:     "attraction",
			OpeningHours: hours,
		}),
	}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	activities, _ := services.ScheduleDay(est, places, tripDay, services.StyleModerate, 1)
	require.Len(t, activities, 1)
	require.Equal(t, "11:00", activities[0].Time)
}

func TestScheduleDay_visitNoteCarriesDuration(t *testing.T) {
	places := []services.SchedulePlace{placeAt("p1", "Pantheon", 41.8986, 12.4769)}
	est := services.NewTravelEstimator(nil, "Rome", "Italy")
	registerAll(est, places)

	activities, _ := services.ScheduleDay(est, places, tripDay, services.StyleModerate, 1)
	require.Len(t, activities, 1)
	require.Contains(t, activities[0].Notes, "Visit duration:")
}
