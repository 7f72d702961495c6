package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/repositories"
	"hiddengems/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository,
	logger *zap.Logger,
) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, categoryRepo, services.ResolveLenient, logger)
}
