// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus instruments of the service and the
// handler exposing them.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tenant_auth"

// Grant labels.
const (
	GrantPassword          = "password"
	GrantClientCredentials = "client_credentials"
)

// Outcome labels of a grant attempt.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInactive           = "inactive"
	OutcomeInvalidClient      = "invalid_client"
	OutcomeExpired            = "expired"
	OutcomeUnsupportedGrant   = "unsupported_grant"
	OutcomeBadRequest         = "bad_request"
	OutcomeError              = "error"
)

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Auth metrics
	GrantAttemptsTotal *prometheus.CounterVec
	ClientsCreated     prometheus.Counter
	ClientsRevoked     prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates the metrics and registers them, together with the Go
// runtime and process collectors, on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GrantAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grant_attempts_total",
				Help:      "Total number of token grant attempts by grant and outcome",
			},
			[]string{"grant", "outcome"},
		),
		ClientsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_clients_created_total",
				Help:      "Total number of API clients created",
			},
		),
		ClientsRevoked: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_clients_revoked_total",
				Help:      "Total number of API clients revoked",
			},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GrantAttemptsTotal,
		m.ClientsCreated,
		m.ClientsRevoked,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterDBStats exposes the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB) {
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, namespace))
}

// ObserveRequest records one served HTTP request. route is the matched route
// pattern, never the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveGrant records the outcome of a token grant attempt.
func (m *Metrics) ObserveGrant(grant, outcome string) {
	m.GrantAttemptsTotal.WithLabelValues(grant, outcome).Inc()
}

// Handler returns the Prometheus exposition handler of the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
