// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/tenant-auth/internal/app"
	"github.com/MKhiriev/tenant-auth/internal/claims"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/utils"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var request models.CreateClientRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.ClientService.CreateClient(r.Context(), actor(r), request)
	if err != nil {
		writeServiceError(w, r, err, "api client creation failed")
		return
	}

	h.metrics.ClientsCreated.Inc()
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.services.ClientService.ListClients(r.Context(), actor(r))
	if err != nil {
		writeServiceError(w, r, err, "listing api clients failed")
		return
	}

	if clients == nil {
		clients = []models.ApiClient{}
	}
	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid client id")
		return
	}

	client, err := h.services.ClientService.GetClient(r.Context(), actor(r), id)
	if err != nil {
		writeServiceError(w, r, err, "fetching api client failed")
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) revokeClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid client id")
		return
	}

	if err = h.services.ClientService.RevokeClient(r.Context(), actor(r), id); err != nil {
		writeServiceError(w, r, err, "revoking api client failed")
		return
	}

	h.metrics.ClientsRevoked.Inc()
	logger.FromRequest(r).Info().Int64("id", id).Msg("api client revoked")
	w.WriteHeader(http.StatusNoContent)
}

// actor returns the principal placed in the context by the auth middleware.
// Without one the zero principal is returned and the service rejects it.
func actor(r *http.Request) models.Principal {
	c, _ := claims.FromContext(r.Context())
	return c.Principal()
}

func clientIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClientID
	}
	return id, nil
}
