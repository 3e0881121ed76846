package main

import (
	"context"
	"fmt"

	"github.com/usiverse/userd/internal/config"
	"github.com/usiverse/userd/internal/crypto"
	"github.com/usiverse/userd/internal/handler"
	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/server"
	"github.com/usiverse/userd/internal/service"
	"github.com/usiverse/userd/internal/store"
	"github.com/usiverse/userd/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("userd-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, crypto.NewBcryptHasher(cfg.App.BcryptCost), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return store.NewConnectSQLite(ctx, cfg, log)
	default:
		return store.NewConnectPostgres(ctx, cfg, log)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
