// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/handler/http"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	metrics *metrics.Metrics,
	buildInfo models.AppBuildInfo,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || metrics == nil {
		return nil, errMissingDependencies
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, buildInfo, cfg, logger),
	}, nil
}
