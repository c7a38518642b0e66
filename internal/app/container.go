package app

import (
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/journey/internal/adapter/repository"
	"github.com/eslsoft/journey/internal/infrastructure/config"
	"github.com/eslsoft/journey/internal/infrastructure/database"
	entdb "github.com/eslsoft/journey/internal/infrastructure/database/ent"
	"github.com/eslsoft/journey/internal/repository"
	"github.com/eslsoft/journey/internal/usecase"
	"github.com/eslsoft/journey/internal/usecase/backup"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	DB        *entdb.Client
	Catalog   usecase.CatalogUsecase
	Stats     usecase.StatsStore
	StatsRepo repository.TermStatsRepository
	Backup    *backup.Service
}

// provideTermStatsRepository picks the stats backend: the local ent client by
// default, or the shared Postgres pool when remote sync is enabled.
func provideTermStatsRepository(cfg *config.Config, client *entdb.Client) (repository.TermStatsRepository, func(), error) {
	if !cfg.RemoteStats.Enabled {
		return adapterrepo.NewTermStatsRepository(client), func() {}, nil
	}
	pool, cleanup, err := database.NewStatsPool(cfg)
	if err != nil {
		return nil, nil, err
	}
	return adapterrepo.NewRemoteTermStatsRepository(pool), cleanup, nil
}

func provideBackupService(terms repository.TermRepository, stats repository.TermStatsRepository) *backup.Service {
	return backup.NewService(terms, stats)
}
