package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-validation-gate/internal/config"
	myHTTP "github.com/MKhiriev/go-validation-gate/internal/handler/http"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/MKhiriev/go-validation-gate/internal/server"
	"github.com/MKhiriev/go-validation-gate/internal/validators"
	"github.com/MKhiriev/go-validation-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("gate-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("gate-server", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	factory, err := validators.NewFactory(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating validator factory")
	}

	handler, err := myHTTP.NewHandler(factory, cfg.Validation, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	version := info.Response()

	fmt.Printf("Build version: %s\n", version.Version)
	fmt.Printf("Build date: %s\n", version.Date)
	fmt.Printf("Build commit: %s\n", version.Commit)
}
