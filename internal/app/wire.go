//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/journey/internal/adapter/repository"
	"github.com/eslsoft/journey/internal/infrastructure/config"
	"github.com/eslsoft/journey/internal/infrastructure/database"
	"github.com/eslsoft/journey/internal/infrastructure/logging"
	"github.com/eslsoft/journey/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewEntClient,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewTermRepository,
	provideTermStatsRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewCatalogUsecase,
	usecase.NewStatsStore,
	provideBackupService,
)

var loggerSet = wire.NewSet(
	logging.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		loggerSet,
		wire.Struct(new(Container), "Config", "Logger", "DB", "Catalog", "Stats", "StatsRepo", "Backup"),
	)
	return nil, nil, nil
}
