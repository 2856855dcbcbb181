package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type RouteServiceInterface interface {
	CreateRoute(ctx context.Context, req request_models.CreateRouteRequest) (*response_models.CreateRouteResponse, error)
	GetRoute(ctx context.Context, id string) (*response_models.RouteDetailResponse, error)
	ListRoutes(ctx context.Context, userID string, page, pageSize int) ([]response_models.RouteResponse, error)
	DeleteRoute(ctx context.Context, id string) error
}

type routeService struct {
	routeRepo repositories.RouteRepository
	itinerary ItineraryServiceInterface
}

func NewRouteService(routeRepo repositories.RouteRepository, itinerary ItineraryServiceInterface) RouteServiceInterface {
	return &routeService{routeRepo: routeRepo, itinerary: itinerary}
}

func (s *routeService) CreateRoute(ctx context.Context, req request_models.CreateRouteRequest) (*response_models.CreateRouteResponse, error) {
	route, err := s.itinerary.GenerateItinerary(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		log.Printf("failed to persist route for %q: %v", req.City, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateRouteResponse{RouteID: id.String()}, nil
}

func (s *routeService) GetRoute(ctx context.Context, id string) (*response_models.RouteDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}

	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}
	return toRouteDetail(route)
}

func (s *routeService) ListRoutes(ctx context.Context, userID string, page, pageSize int) ([]response_models.RouteResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	var routes []db_models.Route
	var err error
	if userID != "" {
		routes, err = s.routeRepo.ListByUserID(ctx, userID, page, pageSize)
	} else {
		routes, err = s.routeRepo.List(ctx, page, pageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, response_models.RouteResponse{
			RouteID:   r.ID.String(),
			Title:     r.Title,
			City:      r.City,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Season:    r.Season,
		})
	}
	return out, nil
}

func (s *routeService) DeleteRoute(ctx context.Context, id string) error {
	routeID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if route == nil {
		return utils.ErrRouteNotFound
	}

	if err := s.routeRepo.Delete(ctx, routeID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toRouteDetail(route *db_models.Route) (*response_models.RouteDetailResponse, error) {
	mustVisit, err := route.GetMustVisit()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	days, err := route.GetDays()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	detail := &response_models.RouteDetailResponse{
		RouteID:     route.ID.String(),
		Title:       route.Title,
		City:        route.City,
		Country:     route.Country,
		StartDate:   route.StartDate,
		EndDate:     route.EndDate,
		Budget:      route.Budget,
		TravelStyle: route.TravelStyle,
		Category:    route.Category,
		Season:      route.Season,
		MustVisit:   make([]response_models.MustVisitResponse, 0, len(mustVisit)),
		Days:        make([]response_models.DayResponse, 0, len(days)),
	}

	for _, mv := range mustVisit {
		detail.MustVisit = append(detail.MustVisit, response_models.MustVisitResponse{
			PlaceID:   mv.PlaceID,
			PlaceName: mv.PlaceName,
			Notes:     mv.Notes,
			Resolved:  mv.Coordinates != nil || len(mv.OpeningHours) > 0,
		})
	}

	for _, day := range days {
		dayResp := response_models.DayResponse{
			Date:       day.Date,
			Activities: make([]response_models.ActivityResponse, 0, len(day.Activities)),
		}
		for _, act := range day.Activities {
			dayResp.Activities = append(dayResp.Activities, response_models.ActivityResponse{
				PlaceID:   act.PlaceID,
				PlaceName: act.PlaceName,
				Time:      act.Time,
				Notes:     act.Notes,
			})
		}
		detail.Days = append(detail.Days, dayResp)
	}
	return detail, nil
}
