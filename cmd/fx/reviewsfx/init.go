package reviewsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/repositories"
	"hiddengems/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, placeRepo, logger)
}
