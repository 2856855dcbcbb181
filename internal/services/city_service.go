package services

import (
	"context"
	"log"
	"strings"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type CityServiceInterface interface {
	ListCities(ctx context.Context) ([]response_models.CityResponse, error)
	GetCitiesByCountry(ctx context.Context, country string) ([]response_models.CityResponse, error)
}

type cityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityServiceInterface {
	return &cityService{cityRepo: cityRepo}
}

func (s *cityService) ListCities(ctx context.Context) ([]response_models.CityResponse, error) {
	cities, err := s.cityRepo.ListAll(ctx)
	if err != nil {
		log.Printf("failed to list cities: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toCityResponses(cities), nil
}

func (s *cityService) GetCitiesByCountry(ctx context.Context, country string) ([]response_models.CityResponse, error) {
	if strings.TrimSpace(country) == "" {
		return nil, utils.ErrInvalidInput
	}

	cities, err := s.cityRepo.ListByCountry(ctx, country)
	if err != nil {
		log.Printf("failed to list cities for country %q: %v", country, err)
		return nil, utils.ErrDatabaseError
	}
	if len(cities) == 0 {
		return nil, utils.ErrCityNotFound
	}
	return toCityResponses(cities), nil
}

func toCityResponses(cities []db_models.City) []response_models.CityResponse {
	out := make([]response_models.CityResponse, 0, len(cities))
	for _, c := range cities {
		resp := response_models.CityResponse{
			CityID:  c.ID.String(),
			Name:    c.Name,
			Country: c.Country,
		}
		if lat, lng, ok := c.Coordinates(); ok {
			resp.Coordinates = &response_models.CoordinatesResponse{Lat: lat, Lng: lng}
		}
		out = append(out, resp)
	}
	return out
}
