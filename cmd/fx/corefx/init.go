package corefx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("GIN_MODE") == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}

	return logger
}
