package controllers_fx

import (
	"go.uber.org/fx"
	"wayfare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRoutesController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewCitiesController))
