package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

const maxTripDays = 30

type ItineraryServiceInterface interface {
	// GenerateItinerary validates the trip request and computes a full
	// day-by-day schedule. The returned route is not persisted.
	GenerateItinerary(ctx context.Context, req request_models.CreateRouteRequest) (*db_models.Route, error)
}

type itineraryService struct {
	placeRepo repositories.PlaceRepository
	cityRepo  repositories.CityRepository
	pool      PoolServiceInterface
	geocoder  GeocodeServiceInterface
	now       func() time.Time
}

func NewItineraryService(
	placeRepo repositories.PlaceRepository,
	cityRepo repositories.CityRepository,
	pool PoolServiceInterface,
	geocoder GeocodeServiceInterface,
) ItineraryServiceInterface {
	return &itineraryService{
		placeRepo: placeRepo,
		cityRepo:  cityRepo,
		pool:      pool,
		geocoder:  geocoder,
		now:       time.Now,
	}
}

func (s *itineraryService) GenerateItinerary(ctx context.Context, req request_models.CreateRouteRequest) (*db_models.Route, error) {
	startDate, err := time.Parse(utils.DateLayout, req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := time.Parse(utils.DateLayout, req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	now := s.now()
	todayDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, startDate.Location())
	if startDate.Before(todayDate) {
		return nil, utils.ErrStartDateInPast
	}
	if endDate.Before(startDate) {
		return nil, utils.ErrInvalidDateRange
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days < 1 {
		return nil, utils.ErrInvalidDateRange
	}
	if days > maxTripDays {
		return nil, utils.ErrTripTooLong
	}

	style := req.Profile.TravelStyle
	if style == "" {
		style = StyleRelaxed
	}
	budget := req.Profile.Budget
	if budget == "" {
		budget = "medium"
	}
	season := req.Season
	if season == "" {
		season = utils.SeasonFromMonth(startDate.Month())
	}

	var cityID, country, countryID string
	cityInfo, err := s.cityRepo.FindByName(ctx, req.City)
	if err != nil {
		log.Printf("city lookup failed for %q: %v", req.City, err)
		return nil, utils.ErrDatabaseError
	}
	if cityInfo != nil {
		cityID = cityInfo.ID.String()
		country = cityInfo.Country
		if cityInfo.CountryID != uuid.Nil {
			countryID = cityInfo.CountryID.String()
		}
	}

	mustVisit, err := s.resolveMustVisits(ctx, req.City, country, req.MustVisit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	additional, err := s.pool.BuildPool(ctx, PoolRequest{
		City:      req.City,
		Country:   country,
		Days:      days,
		Interests: req.Profile.Interests,
		Budget:    budget,
		Style:     style,
		MustVisit: mustVisit,
	})
	if err != nil {
		log.Printf("candidate pool build failed for %q: %v", req.City, err)
		return nil, utils.ErrDatabaseError
	}

	perDay := PlacesPerDay(style)
	groups := DistributeDays(mustVisit, additional, days, perDay, len(req.Profile.Interests) > 0)

	estimator := NewTravelEstimator(s.geocoder, req.City, country)
	for _, group := range groups {
		for _, place := range group {
			estimator.Register(ctx, place)
		}
	}

	routeDays := make([]db_models.Day, 0, days)
	travelCounter := 1
	for offset := 0; offset < days; offset++ {
		date := startDate.AddDate(0, 0, offset)

		var activities []db_models.Activity
		activities, travelCounter = ScheduleDay(estimator, groups[offset], date, style, travelCounter)

		routeDays = append(routeDays, db_models.Day{
			Date:       date.Format(utils.DateLayout),
			Activities: activities,
		})
	}

	route := &db_models.Route{
		UserID:      req.UserID,
		Title:       req.Title,
		City:        req.City,
		CityID:      cityID,
		Country:     country,
		CountryID:   countryID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      budget,
		TravelStyle: style,
		Category:    req.Category,
		Season:      season,
	}
	if err := route.SetMustVisit(mustVisitItems(mustVisit)); err != nil {
		return nil, fmt.Errorf("encode must-visit items: %w", err)
	}
	if err := route.SetDays(routeDays); err != nil {
		return nil, fmt.Errorf("encode days: %w", err)
	}
	return route, nil
}

// resolveMustVisits matches each requested place against the catalog, going
// from exact name to substring to token overlap. Anything still unmatched
// keeps its requested name, gets best-effort geocoded coordinates and an
// opaque generated id.
func (s *itineraryService) resolveMustVisits(ctx context.Context, city, country string, requests []request_models.MustVisitRequest) ([]SchedulePlace, error) {
	var resolved []SchedulePlace
	for _, mv := range requests {
		place, err := s.placeRepo.FindOneByNameInCity(ctx, city, mv.PlaceName, false)
		if err != nil {
			return nil, err
		}
		if place == nil {
			place, err = s.placeRepo.FindOneByNameInCity(ctx, city, mv.PlaceName, true)
			if err != nil {
				return nil, err
			}
		}
		if place == nil {
			place, err = s.matchByTokens(ctx, city, mv.PlaceName)
			if err != nil {
				return nil, err
			}
		}

		if place != nil {
			resolved = append(resolved, NewResolvedMustVisit(*place, mv.Notes, mv.Source))
			continue
		}

		item := db_models.MustVisitItem{
			PlaceID:   mv.PlaceID,
			PlaceName: mv.PlaceName,
			Notes:     mv.Notes,
			Source:    mv.Source,
		}
		if item.PlaceID == "" {
			item.PlaceID = strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		}
		if lat, lng, ok := s.geocoder.GeocodePlace(ctx, mv.PlaceName, city, country); ok {
			item.Coordinates = &db_models.Coordinates{Lat: lat, Lng: lng}
		}
		resolved = append(resolved, NewMustVisit(item))
	}
	return resolved, nil
}

// matchByTokens scores every place in the city by word overlap with the
// requested name: each requested word found in a catalog name counts 1, each
// catalog word found in the request counts 0.5, containment either way adds
// 2. The best score wins if it reaches 1.
func (s *itineraryService) matchByTokens(ctx context.Context, city, name string) (*db_models.Place, error) {
	places, err := s.placeRepo.FindByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	target := strings.ToLower(name)
	targetWords := strings.Fields(target)

	var best *db_models.Place
	bestScore := 0.0
	for i := range places {
		dbName := strings.ToLower(places[i].Name)
		score := 0.0
		for _, word := range targetWords {
			if strings.Contains(dbName, word) {
				score++
			}
		}
		for _, word := range strings.Fields(dbName) {
			if strings.Contains(target, word) {
				score += 0.5
			}
		}
		if strings.Contains(dbName, target) || strings.Contains(target, dbName) {
			score += 2
		}
		if score > bestScore {
			bestScore = score
			best = &places[i]
		}
	}

	if best == nil || bestScore < 1 {
		return nil, nil
	}
	return best, nil
}

func mustVisitItems(places []SchedulePlace) []db_models.MustVisitItem {
	items := make([]db_models.MustVisitItem, 0, len(places))
	for _, p := range places {
		item := db_models.MustVisitItem{
			PlaceID:      p.ID(),
			PlaceName:    p.Name(),
			Notes:        p.Notes(),
			OpeningHours: p.OpeningHours(),
		}
		if p.mustVisit != nil {
			item.Source = p.mustVisit.Source
			item.Address = p.mustVisit.Address
		}
		if lat, lng, ok := p.Coordinates(); ok {
			item.Coordinates = &db_models.Coordinates{Lat: lat, Lng: lng}
		}
		items = append(items, item)
	}
	return items
}
