package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-cookbook/internal/client"
	"github.com/MKhiriev/go-cookbook/internal/codec"
	"github.com/MKhiriev/go-cookbook/internal/config"
	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/service"
	"github.com/MKhiriev/go-cookbook/internal/store"
	"github.com/MKhiriev/go-cookbook/internal/tui"
	"github.com/MKhiriev/go-cookbook/internal/utils"
	"github.com/MKhiriev/go-cookbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog := logger.New("cookbook", zerolog.InfoLevel, os.Stderr)
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger("cookbook", cfg.App.LogLevel, cfg.App.LogFile)
	defer closeLog()
	log.Info().Str("build", buildInfo.String()).Msg("starting cookbook")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ids := utils.NewUUIDGenerator()
	clock := utils.SystemClock

	storages, err := store.NewClientStorages(ctx, cfg.Storage, codec.NewRecipeCodec(ids, clock), clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, ids, clock, log)
	ui := tui.New(services, buildInfo, log)

	app := client.NewApp(services, ui, log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		closeLog()
		os.Exit(1)
	}
}
