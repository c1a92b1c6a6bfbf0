// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/claims"
	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/mock"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type testDeps struct {
	auth     *mock.MockAuthService
	clients  *mock.MockClientService
	verifier *mock.MockTokenVerifier
	metrics  *metrics.Metrics
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		auth:     mock.NewMockAuthService(ctrl),
		clients:  mock.NewMockClientService(ctrl),
		verifier: mock.NewMockTokenVerifier(ctrl),
		metrics:  metrics.NewMetrics(prometheus.NewRegistry()),
	}

	services := &service.Services{
		AuthService:   deps.auth,
		ClientService: deps.clients,
		TokenVerifier: deps.verifier,
	}

	h := NewHandler(
		services,
		deps.metrics,
		models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
		config.Server{HTTPAddress: ":8080", RequestTimeout: 5 * time.Second},
		logger.Nop(),
	)
	return h, deps
}

// serve runs a request through the complete router.
func serve(h *Handler, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func adminClaims() claims.Claims {
	return claims.New(jwt.MapClaims{
		"sub":        "alice",
		"userId":     float64(7),
		"tenantId":   float64(42),
		"customerId": float64(42),
		"role":       "ADMIN",
		"groups":     []any{"ADMIN"},
		"tokenType":  "user",
	})
}

func userClaims() claims.Claims {
	return claims.New(jwt.MapClaims{
		"sub":       "bob",
		"userId":    float64(8),
		"tenantId":  float64(42),
		"role":      "USER",
		"groups":    []any{"USER"},
		"tokenType": "user",
	})
}

func clientClaims() claims.Claims {
	return claims.New(jwt.MapClaims{
		"sub":       "client_abc",
		"clientId":  "client_abc",
		"tenantId":  float64(42),
		"groups":    []any{"CLIENT"},
		"scopes":    "read,write",
		"tokenType": "client",
	})
}

func ptr[T any](v T) *T {
	return &v
}

func nopRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(logger.Nop().WithContext(req.Context()))
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
