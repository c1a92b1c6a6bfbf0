// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/models"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services  *service.Services
	metrics   *metrics.Metrics
	buildInfo models.AppBuildInfo

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	metrics *metrics.Metrics,
	buildInfo models.AppBuildInfo,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		buildInfo:      buildInfo,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
