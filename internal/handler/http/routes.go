// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/tenant-auth/internal/app"
	"github.com/MKhiriev/tenant-auth/internal/utils"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/version", h.version)

		// routes without authorization
		r.Post("/auth/login", h.login)
		r.Post("/auth/token", h.token)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/auth/me", h.me)

			r.Route("/clients", func(r chi.Router) {
				r.Use(h.requireGroup(models.RoleAdmin))
				r.Get("/", h.listClients)
				r.Post("/", h.createClient)
				r.Get("/{id}", h.getClient)
				r.Delete("/{id}", h.revokeClient)
			})
		})
	})

	return router
}
