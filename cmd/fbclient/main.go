package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-firebase-client/internal/client"
	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/service"
	"github.com/MKhiriev/go-firebase-client/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		client.PrintError(os.Stderr, err)
		return 2
	}

	log := logger.NewClientLogger("fbclient", cfg.App.LogLevel)
	log.Debug().Str("version", cfg.App.Version).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		client.PrintError(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services, err := service.NewClientServices(cfg, storages, log)
	if err != nil {
		log.Err(err).Msg("create client services")
		client.PrintError(os.Stderr, err)
		return 1
	}

	if err = client.NewApp(services, os.Stdout, log).Run(ctx, args); err != nil {
		log.Err(err).Msg("command failed")
		client.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
