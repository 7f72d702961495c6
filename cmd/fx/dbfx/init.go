package dbfx

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hiddengems/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideRedis)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideRedis() *redis.Client {
	return infra.InitRedis()
}
