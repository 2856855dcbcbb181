package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"wayfare/internal/models/db_models"
	"wayfare/internal/services"
)

// Fuzzy name matching is exercised through the pool builder's must-visit
// exclusion, which is its only caller besides must-visit resolution.
func TestMustVisitNameMatching(t *testing.T) {
	tests := []struct {
		name      string
		mustVisit string
		catalog   string
		excluded  bool
	}{
		{"exact", "Colosseum", "Colosseum", true},
		{"case insensitive", "colosseum", "Colosseum", true},
		{"containment", "Colosseum", "The Colosseum", true},
		{"token overlap with stop words", "Basilica di San Pietro", "San Pietro", true},
		{"unrelated", "Colosseum", "Pantheon", false},
		{"stop words alone do not match", "The Museum", "The Palace", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePlaceRepo{places: []db_models.Place{
				{PlaceID: "c1", Name: tt.catalog, City: "Rome", Country: "Italy", Category: "historic", Rating: 4.5},
			}}
			pool := services.NewPoolService(repo)

			mv := services.NewMustVisit(db_models.MustVisitItem{PlaceID: "x", PlaceName: tt.mustVisit})
			got, err := pool.BuildPool(context.Background(), services.PoolRequest{
				City:      "Rome",
				Days:      1,
				Style:     services.StyleRelaxed,
				MustVisit: []services.SchedulePlace{mv},
			})
			require.NoError(t, err)

			found := false
			for _, sp := range got {
				if sp.Name() == tt.catalog {
					found = true
				}
			}
			require.Equal(t, tt.excluded, !found)
		})
	}
}
