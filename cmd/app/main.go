package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfare/cmd/fx/cities_fx"
	"wayfare/cmd/fx/controllers_fx"
	"wayfare/cmd/fx/db_fx"
	"wayfare/cmd/fx/geo_fx"
	"wayfare/cmd/fx/memcache_fx"
	"wayfare/cmd/fx/places_fx"
	"wayfare/cmd/fx/routes_fx"
	"wayfare/internal/api/controllers"
	"wayfare/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		geo_fx.Module,
		places_fx.Module,
		cities_fx.Module,
		routes_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	routesController *controllers.RoutesController,
	placesController *controllers.PlacesController,
	citiesController *controllers.CitiesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, routesController, placesController, citiesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	routesController *controllers.RoutesController,
	placesController *controllers.PlacesController,
	citiesController *controllers.CitiesController) {

	routesGroup := r.Group("/routes")
	routesGroup.POST("", routesController.CreateRoute)
	routesGroup.GET("", routesController.ListRoutes)
	routesGroup.GET("/:id", routesController.GetRoute)
	routesGroup.DELETE("/:id", routesController.DeleteRoute)

	placesGroup := r.Group("/places")
	placesGroup.GET("/city/:city", placesController.GetPlacesByCity)
	placesGroup.POST("/search", placesController.SearchPlaces)
	placesGroup.POST("/autocomplete", placesController.AutocompletePlaces)

	citiesGroup := r.Group("/cities")
	citiesGroup.GET("", citiesController.ListCities)
	citiesGroup.GET("/country/:country", citiesController.GetCitiesByCountry)
}
