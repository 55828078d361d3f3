package main

import (
	"context"
	"fmt"

	"github.com/wayfare-app/auth-server/internal/config"
	"github.com/wayfare-app/auth-server/internal/handler"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/mailer"
	"github.com/wayfare-app/auth-server/internal/server"
	"github.com/wayfare-app/auth-server/internal/service"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	verificationMailer := mailer.NewMailer(cfg.Mailer, cfg.App, log)

	services := service.NewServices(repos, *cfg, verificationMailer, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	janitor := workers.NewBlacklistJanitor(ctx, repos.TokenRepository, cfg.Workers.JanitorInterval, logger.NewLogger("janitor"))
	workers.NewWorkers(janitor).Run()

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
