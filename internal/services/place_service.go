package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

const (
	defaultSearchLimit     = 50
	autocompleteFetchLimit = 50
)

type PlaceServiceInterface interface {
	GetPlacesByCity(ctx context.Context, city string) ([]response_models.PlaceResponse, error)
	SearchPlaces(ctx context.Context, req request_models.SearchPlacesRequest) ([]response_models.PlaceResponse, error)
	AutocompletePlaces(ctx context.Context, req request_models.AutocompletePlacesRequest) ([]response_models.PlaceResponse, error)
}

type placeService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &placeService{placeRepo: placeRepo}
}

func (s *placeService) GetPlacesByCity(ctx context.Context, city string) ([]response_models.PlaceResponse, error) {
	if strings.TrimSpace(city) == "" {
		return nil, utils.ErrInvalidInput
	}

	places, err := s.placeRepo.FindByCity(ctx, city)
	if err != nil {
		log.Printf("failed to load places for city %q: %v", city, err)
		return nil, utils.ErrDatabaseError
	}
	if len(places) == 0 {
		return nil, utils.ErrCityNotFound
	}
	return toPlaceResponses(places), nil
}

func (s *placeService) SearchPlaces(ctx context.Context, req request_models.SearchPlacesRequest) ([]response_models.PlaceResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultSearchLimit
	}

	places, err := s.placeRepo.SearchPlaces(ctx, req.City, req.Category, req.Name, req.Country, limit)
	if err != nil {
		log.Printf("place search failed for city %q: %v", req.City, err)
		return nil, utils.ErrDatabaseError
	}

	minRating := 0.0
	if req.MinRating != nil {
		minRating = *req.MinRating
	} else if req.Rating != nil {
		minRating = *req.Rating
	}

	filtered := make([]db_models.Place, 0, len(places))
	for _, p := range places {
		if minRating > 0 && p.Rating < minRating {
			continue
		}
		if req.Budget != "" && !budgetAllows(p.Price, req.Budget) {
			continue
		}
		filtered = append(filtered, p)
	}
	return toPlaceResponses(filtered), nil
}

func (s *placeService) AutocompletePlaces(ctx context.Context, req request_models.AutocompletePlacesRequest) ([]response_models.PlaceResponse, error) {
	if strings.TrimSpace(req.SearchTerm) == "" {
		return nil, utils.ErrInvalidInput
	}

	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	places, err := s.placeRepo.SearchPlaces(ctx, req.City, "", req.SearchTerm, "", autocompleteFetchLimit)
	if err != nil {
		log.Printf("place autocomplete failed for city %q: %v", req.City, err)
		return nil, utils.ErrDatabaseError
	}

	term := strings.ToLower(strings.TrimSpace(req.SearchTerm))
	sort.SliceStable(places, func(i, j int) bool {
		ri, rj := autocompleteRank(places[i].Name, term), autocompleteRank(places[j].Name, term)
		if ri != rj {
			return ri < rj
		}
		return places[i].Popularity < places[j].Popularity
	})
	if len(places) > limit {
		places = places[:limit]
	}
	return toPlaceResponses(places), nil
}

// autocompleteRank orders matches: exact name, then prefix, then whole-word
// hit, then any substring.
func autocompleteRank(name, term string) int {
	n := strings.ToLower(name)
	switch {
	case n == term:
		return 0
	case strings.HasPrefix(n, term):
		return 1
	default:
		for _, w := range strings.Fields(n) {
			if strings.Trim(w, ".,()'\"") == term {
				return 2
			}
		}
		return 3
	}
}

func toPlaceResponses(places []db_models.Place) []response_models.PlaceResponse {
	out := make([]response_models.PlaceResponse, 0, len(places))
	for _, p := range places {
		resp := response_models.PlaceResponse{
			PlaceID:         p.PlaceID,
			Name:            p.Name,
			City:            p.City,
			Country:         p.Country,
			Category:        p.Category,
			WayfareCategory: p.WayfareCategory,
			Price:           p.Price,
			Rating:          p.Rating,
			Popularity:      p.Popularity,
			OpeningHours:    p.OpeningHours,
			DurationMinutes: p.DurationMinutes,
			Address:         p.Address,
			ImageURL:        p.ImageURL,
		}
		if lat, lng, ok := p.Coordinates(); ok {
			resp.Coordinates = &response_models.CoordinatesResponse{Lat: lat, Lng: lng}
		}
		out = append(out, resp)
	}
	return out
}
