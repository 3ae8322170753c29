package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/emulator"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/server"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fb-emulator")
	cfg, _, err := config.GetEmulatorConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	log.Debug().
		Str("address", cfg.Address).
		Bool("require_auth", cfg.RequireAuth).
		Dur("token_duration", cfg.TokenDuration).
		Msg("received configs")

	handler := emulator.NewHandler(*cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
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
