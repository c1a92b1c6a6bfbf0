// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no route.
const unmatchedRoute = "unmatched"

// withMetrics records request count and latency labelled by the matched route
// pattern, which keeps label cardinality bounded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveRequest(r.Method, route, mw.Status(), time.Since(start))
	})
}
