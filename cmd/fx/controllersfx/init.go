package controllersfx

import (
	"go.uber.org/fx"

	"hiddengems/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewCommentsController),
	fx.Provide(controllers.NewReviewsController),
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewUploadController))
