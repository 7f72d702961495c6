package accountfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hiddengems/internal/repositories"
	"hiddengems/internal/services"
	"hiddengems/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideResetTokens, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideResetTokens() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}

func provideAccountService(
	userRepo repositories.UserRepository,
	resetTokens memcache.ResetTokenStore,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, resetTokens, logger)
}
