package categoriesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/repositories"
	"hiddengems/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, logger *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, logger)
}
