package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/handler"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/mailer"
	"github.com/MKhiriev/chick-care/internal/server"
	"github.com/MKhiriev/chick-care/internal/service"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("chick-care-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(context.Background()); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	resetMailer, err := mailer.New(cfg.Mail, cfg.App.ResetTokenTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	services := service.NewServices(storages, resetMailer, *cfg, buildInfo, log)
	if err = services.AuthService.SeedAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding admin account")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("chick-care server %s\n", info)
}
