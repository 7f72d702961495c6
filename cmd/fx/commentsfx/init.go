package commentsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/repositories"
	"hiddengems/internal/services"
)

var Module = fx.Provide(
	provideCommentRepo, provideCommentService)

func provideCommentRepo(db *gorm.DB) repositories.CommentRepository {
	return repositories.NewCommentRepository(db)
}

func provideCommentService(
	commentRepo repositories.CommentRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) services.CommentServiceInterface {
	return services.NewCommentService(commentRepo, placeRepo, logger)
}
