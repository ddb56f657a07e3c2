package main

import (
	"fabshop-api/config"
	"fabshop-api/internal/api"
	"fabshop-api/internal/database"
	"fabshop-api/internal/logger"
	"fabshop-api/internal/middle"
	"fabshop-api/internal/scheduler"
	"fabshop-api/repository"
	"fabshop-api/service"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,        // inject config
			logger.NewLogger,         // inject logger
			database.NewDBConnection, // inject db connection
		),
		repository.Module,
		service.Module,
		middle.Module,
		api.Module,
		fx.Invoke(
			database.RunMigrations,
			scheduler.NewScheduler,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)
	app.Run()
}
