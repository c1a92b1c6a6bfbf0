// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	info := models.NewAppBuildInfo("", "", "")

	tests := []struct {
		name     string
		services *service.Services
		metrics  *metrics.Metrics
		cfg      config.Server
		wantErr  error
	}{
		{
			name:     "HTTP address configured",
			services: &service.Services{},
			metrics:  m,
			cfg:      config.Server{HTTPAddress: ":8080"},
		},
		{
			name:     "no address",
			services: &service.Services{},
			metrics:  m,
			wantErr:  errNoHandlersAreCreated,
		},
		{
			name:    "no services",
			metrics: m,
			cfg:     config.Server{HTTPAddress: ":8080"},
			wantErr: errMissingDependencies,
		},
		{
			name:     "no metrics",
			services: &service.Services{},
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantErr:  errMissingDependencies,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, tt.metrics, info, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP)
			assert.NotNil(t, h.HTTP.Init())
		})
	}
}
