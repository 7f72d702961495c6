package dashboardfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/repositories"
	"hiddengems/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, logger *zap.Logger) services.DashboardServiceInterface {
	return services.NewDashboardService(repo, logger)
}
