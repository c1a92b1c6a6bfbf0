// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/handler"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/server"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/internal/store"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("tenant-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// linker flags win over the configured version
	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("token_issuer", cfg.App.TokenIssuer).
		Int("hash_cost", cfg.App.HashCost).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.NewMetrics(prometheus.NewRegistry())
	m.RegisterDBStats(storages.SQLDB())

	handlers, err := handler.NewHandlers(services, m, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
