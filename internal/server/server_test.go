// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/handler"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	handlers, err := handler.NewHandlers(
		&service.Services{},
		metrics.NewMetrics(prometheus.NewRegistry()),
		models.NewAppBuildInfo("test", "", ""),
		cfg,
		logger.Nop(),
	)
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ServesAndShutsDownOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), RequestTimeout: time.Second}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.RunServer(ctx)
	}()

	url := fmt.Sprintf("http://%s/api/version", cfg.HTTPAddress)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := config.Server{HTTPAddress: l.Addr().String()}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
}
