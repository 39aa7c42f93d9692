package main

import (
	"context"
	"fmt"

	"github.com/TituxMetal/epicweb-notes-app/internal/config"
	"github.com/TituxMetal/epicweb-notes-app/internal/crypto"
	handler "github.com/TituxMetal/epicweb-notes-app/internal/handler/http"
	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/server"
	"github.com/TituxMetal/epicweb-notes-app/internal/service"
	"github.com/TituxMetal/epicweb-notes-app/internal/store"
	"github.com/TituxMetal/epicweb-notes-app/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("epicweb-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db)
	services := service.NewServices(repositories, log)

	handlers, err := handler.NewHandler(services, cfg.App, crypto.NewKeyRing(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
