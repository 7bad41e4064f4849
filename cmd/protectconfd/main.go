// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Command protectconfd serves the layered configuration resolver over HTTP
// and gRPC. It resolves user documents against the bundled pipeline
// defaults, archives every resolution run, and reports health to
// orchestrators.
package main

import (
	"context"
	"fmt"

	"github.com/pimmuno/protectconf/internal/handler"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/server"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

// Populated at build time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("protectconfd")

	cfg, err := settings.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading settings")
	}
	if cfg.Log.Pretty {
		log = log.Console()
	}
	if err = logger.ApplyLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error applying log level")
	}

	log.Debug().Any("settings", cfg).Msg("loaded settings")

	ctx := context.Background()

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating run registry")
	}
	defer func() {
		if closeErr := repos.Runs.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing run registry")
		}
	}()

	res, err := resolver.New(cfg.Resolver.ProtectedKeys...)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading bundled defaults")
	}

	services, err := service.NewServices(repos, res, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.Run()
}
