package routes_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo, providePoolService, provideItineraryService, provideRouteService)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func providePoolService(placeRepo repositories.PlaceRepository) services.PoolServiceInterface {
	return services.NewPoolService(placeRepo)
}

func provideItineraryService(
	placeRepo repositories.PlaceRepository,
	cityRepo repositories.CityRepository,
	pool services.PoolServiceInterface,
	geocoder services.GeocodeServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(placeRepo, cityRepo, pool, geocoder)
}

func provideRouteService(
	routeRepo repositories.RouteRepository,
	itinerary services.ItineraryServiceInterface,
) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo, itinerary)
}
