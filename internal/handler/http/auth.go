// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/tenant-auth/internal/app"
	"github.com/MKhiriev/tenant-auth/internal/claims"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/metrics"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/internal/utils"
	"github.com/MKhiriev/tenant-auth/models"
)

// login runs the password grant.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.metrics.ObserveGrant(metrics.GrantPassword, metrics.OutcomeBadRequest)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.metrics.ObserveGrant(metrics.GrantPassword, metrics.OutcomeInvalidCredentials)
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		case errors.Is(err, service.ErrAccountInactive):
			h.metrics.ObserveGrant(metrics.GrantPassword, metrics.OutcomeInactive)
			utils.WriteError(w, app.MsgAccountInactive, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.metrics.ObserveGrant(metrics.GrantPassword, metrics.OutcomeError)
			utils.WriteError(w, app.MsgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	h.metrics.ObserveGrant(metrics.GrantPassword, metrics.OutcomeSuccess)
	utils.WriteJSON(w, response, http.StatusOK)
}

// token runs the client-credentials grant. Credentials are read from the form
// body; HTTP Basic credentials are used when the form carries neither.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid token request form")
		h.metrics.ObserveGrant(metrics.GrantClientCredentials, metrics.OutcomeBadRequest)
		utils.WriteError(w, app.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	request := models.TokenRequest{
		GrantType:    r.PostForm.Get("grant_type"),
		ClientID:     r.PostForm.Get("client_id"),
		ClientSecret: r.PostForm.Get("client_secret"),
	}

	basic := false
	if request.ClientID == "" && request.ClientSecret == "" {
		if clientID, clientSecret, ok := r.BasicAuth(); ok {
			request.ClientID, request.ClientSecret = clientID, clientSecret
			basic = true
		}
	}

	response, err := h.services.AuthService.ClientCredentialsLogin(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGrantType):
			h.metrics.ObserveGrant(metrics.GrantClientCredentials, metrics.OutcomeUnsupportedGrant)
			utils.WriteError(w, app.MsgUnsupportedGrantType, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidClient):
			outcome := metrics.OutcomeInvalidClient
			if errors.Is(err, service.ErrClientExpired) {
				outcome = metrics.OutcomeExpired
			}
			h.metrics.ObserveGrant(metrics.GrantClientCredentials, outcome)
			if basic {
				w.Header().Set("WWW-Authenticate", `Basic realm="tenant-auth"`)
			}
			utils.WriteError(w, app.MsgInvalidClient, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during client credentials grant")
			h.metrics.ObserveGrant(metrics.GrantClientCredentials, metrics.OutcomeError)
			utils.WriteError(w, app.MsgServerError, http.StatusInternalServerError)
		}
		return
	}

	h.metrics.ObserveGrant(metrics.GrantClientCredentials, metrics.OutcomeSuccess)
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, response, http.StatusOK)
}

// me returns the principal of the verified bearer token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	c, ok := claims.FromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, c.Principal(), http.StatusOK)
}
