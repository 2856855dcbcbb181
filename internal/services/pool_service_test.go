package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"wayfare/internal/models/db_models"
	"wayfare/internal/services"
)

func romePlace(id, name, category, price string, rating, popularity float64) db_models.Place {
	return db_models.Place{
		PlaceID:    id,
		Name:       name,
		City:       "Rome",
		Country:    "Italy",
		Category:   category,
		Price:      price,
		Rating:     rating,
		Popularity: popularity,
	}
}

func TestBuildPool_budgetLowFiltersPricey(t *testing.T) {
	repo := &fakePlaceRepo{places: []db_models.Place{
		romePlace("p1", "Pantheon", "historic", "", 4.8, 1),
		romePlace("p2", "Galleria Borghese", "museum", "25€", 4.7, 2),
		romePlace("p3", "Trevi Fountain", "fountain", "10€", 4.6, 3),
	}}
	pool := services.NewPoolService(repo)

	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:   "Rome",
		Days:   1,
		Budget: "low",
		Style:  services.StyleRelaxed,
	})
	require.NoError(t, err)

	for _, sp := range got {
		require.NotEqual(t, "Galleria Borghese", sp.Name())
	}
}

func TestBuildPool_blacklistDropsServices(t *testing.T) {
	repo := &fakePlaceRepo{places: []db_models.Place{
		romePlace("p1", "Airport Taxi Transfer", "transport", "", 4.9, 1),
		romePlace("p2", "Colosseum", "historic", "", 4.8, 1),
	}}
	pool := services.NewPoolService(repo)

	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:  "Rome",
		Days:  1,
		Style: services.StyleRelaxed,
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, sp := range got {
		require.NotEqual(t, "Airport Taxi Transfer", sp.Name())
	}
}

func TestBuildPool_excludesMustVisitLookalikes(t *testing.T) {
	repo := &fakePlaceRepo{places: []db_models.Place{
		romePlace("p1", "The Colosseum", "historic", "", 4.8, 1),
		romePlace("p2", "Roman Forum", "historic", "", 4.7, 2),
	}}
	pool := services.NewPoolService(repo)

	mv := services.NewMustVisit(db_models.MustVisitItem{PlaceID: "x", PlaceName: "Colosseum"})
	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:      "Rome",
		Days:      1,
		Style:     services.StyleRelaxed,
		MustVisit: []services.SchedulePlace{mv},
	})
	require.NoError(t, err)

	for _, sp := range got {
		require.NotEqual(t, "The Colosseum", sp.Name())
	}
}

func TestBuildPool_cyclesWhenScarce(t *testing.T) {
	repo := &fakePlaceRepo{places: []db_models.Place{
		romePlace("p1", "Pantheon", "historic", "", 4.8, 1),
	}}
	pool := services.NewPoolService(repo)

	// Three relaxed days want six slots; one place must be cycled.
	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:  "Rome",
		Days:  3,
		Style: services.StyleRelaxed,
	})
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, sp := range got {
		require.Equal(t, "Pantheon", sp.Name())
	}
}

func TestBuildPool_widensToPartialCityMatch(t *testing.T) {
	repo := &fakePlaceRepo{places: []db_models.Place{
		{PlaceID: "p1", Name: "Old Town Hall", City: "Rome Metropolitan Area", Country: "Italy", Category: "historic", Rating: 4.2},
	}}
	pool := services.NewPoolService(repo)

	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:  "Rome",
		Days:  1,
		Style: services.StyleRelaxed,
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestBuildPool_emptyEverywhereIsNotAnError(t *testing.T) {
	pool := services.NewPoolService(&fakePlaceRepo{})

	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:  "Atlantis",
		Days:  2,
		Style: services.StyleModerate,
	})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBuildPool_interestsNarrowSelection(t *testing.T) {
	repo := &fakePlaceRepo{places: []db_models.Place{
		romePlace("p1", "Capitoline Museums", "museum", "", 4.7, 2),
		romePlace("p2", "Trastevere Food Market", "market", "", 4.5, 4),
	}}
	pool := services.NewPoolService(repo)

	got, err := pool.BuildPool(context.Background(), services.PoolRequest{
		City:      "Rome",
		Days:      1,
		Style:     services.StyleRelaxed,
		Interests: []string{"museum"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, sp := range got {
		require.NotEqual(t, "Trastevere Food Market", sp.Name())
	}
}

func TestPlacesPerDay(t *testing.T) {
	require.Equal(t, 2, services.PlacesPerDay(services.StyleRelaxed))
	require.Equal(t, 4, services.PlacesPerDay(services.StyleModerate))
	require.Equal(t, 6, services.PlacesPerDay(services.StyleAccelerated))
	require.Equal(t, 2, services.PlacesPerDay(""))
}
