package services_test

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
)

// fakePlaceRepo is an in-memory stand-in for the place repository, matching
// the real repository's ordering (rating desc, popularity asc).
type fakePlaceRepo struct {
	places []db_models.Place
}

func ranked(places []db_models.Place) []db_models.Place {
	out := make([]db_models.Place, len(places))
	copy(out, places)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Popularity < out[j].Popularity
	})
	return out
}

func (f *fakePlaceRepo) FindByCity(_ context.Context, city string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if strings.EqualFold(p.City, city) {
			out = append(out, p)
		}
	}
	return ranked(out), nil
}

func (f *fakePlaceRepo) FindByCityPartial(_ context.Context, fragment string, limit int) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if strings.Contains(strings.ToLower(p.City), strings.ToLower(fragment)) {
			out = append(out, p)
		}
	}
	out = ranked(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePlaceRepo) FindByCountry(_ context.Context, country string, limit int) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if strings.Contains(strings.ToLower(p.Country), strings.ToLower(country)) {
			out = append(out, p)
		}
	}
	out = ranked(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePlaceRepo) FindByIDs(_ context.Context, ids []string) ([]db_models.Place, error) {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	var out []db_models.Place
	for _, p := range f.places {
		if _, ok := idSet[p.PlaceID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) FindOneByNameInCity(_ context.Context, city, name string, fuzzy bool) (*db_models.Place, error) {
	for i := range f.places {
		p := f.places[i]
		if !strings.EqualFold(p.City, city) {
			continue
		}
		if fuzzy {
			if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
				return &p, nil
			}
		} else if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) SearchPlaces(_ context.Context, city, category, name, country string, limit int) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if !strings.EqualFold(p.City, city) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) && !strings.EqualFold(p.WayfareCategory, category) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			continue
		}
		if country != "" && !strings.EqualFold(p.Country, country) {
			continue
		}
		out = append(out, p)
	}
	out = ranked(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCityRepo struct {
	cities []db_models.City
}

func (f *fakeCityRepo) FindByName(_ context.Context, name string) (*db_models.City, error) {
	for i := range f.cities {
		if strings.EqualFold(f.cities[i].Name, name) {
			return &f.cities[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) ListAll(_ context.Context) ([]db_models.City, error) {
	return f.cities, nil
}

func (f *fakeCityRepo) ListByCountry(_ context.Context, country string) ([]db_models.City, error) {
	var out []db_models.City
	for _, c := range f.cities {
		if strings.EqualFold(c.Country, country) {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeGeocoder resolves names from a fixed table and records how often it
// was asked, so tests can assert lookups happen at most once per place.
type fakeGeocoder struct {
	coords map[string][2]float64
	calls  int
}

func (f *fakeGeocoder) GeocodePlace(_ context.Context, name, _, _ string) (float64, float64, bool) {
	f.calls++
	c, ok := f.coords[strings.ToLower(name)]
	if !ok {
		return 0, 0, false
	}
	return c[0], c[1], true
}

func (f *fakeGeocoder) GeocodeCity(_ context.Context, city, _ string) (float64, float64, bool) {
	c, ok := f.coords[strings.ToLower(city)]
	if !ok {
		return 0, 0, false
	}
	return c[0], c[1], true
}

// fakeRouteRepo stores routes keyed by id, newest first on List to mirror
// the created_at ordering of the real repository.
type fakeRouteRepo struct {
	routes  []*db_models.Route
	listErr error
}

func (f *fakeRouteRepo) Create(_ context.Context, route *db_models.Route) (uuid.UUID, error) {
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	f.routes = append(f.routes, route)
	return route.ID, nil
}

func (f *fakeRouteRepo) GetByID(_ context.Context, id string) (*db_models.Route, error) {
	for _, r := range f.routes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) page(routes []*db_models.Route, page, pageSize int) []db_models.Route {
	start := (page - 1) * pageSize
	if start >= len(routes) {
		return nil
	}
	end := start + pageSize
	if end > len(routes) {
		end = len(routes)
	}
	out := make([]db_models.Route, 0, end-start)
	for _, r := range routes[start:end] {
		out = append(out, *r)
	}
	return out
}

func (f *fakeRouteRepo) List(_ context.Context, page, pageSize int) ([]db_models.Route, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page(f.routes, page, pageSize), nil
}

func (f *fakeRouteRepo) ListByUserID(_ context.Context, userID string, page, pageSize int) ([]db_models.Route, error) {
	var owned []*db_models.Route
	for _, r := range f.routes {
		if r.UserID == userID {
			owned = append(owned, r)
		}
	}
	return f.page(owned, page, pageSize), nil
}

func (f *fakeRouteRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.routes[:0]
	for _, r := range f.routes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.routes = kept
	return nil
}

func ptr[T any](v T) *T { return &v }
