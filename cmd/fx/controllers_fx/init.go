package controllers_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewSpeechController))
