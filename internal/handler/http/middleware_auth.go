// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/tenant-auth/internal/app"
	"github.com/MKhiriev/tenant-auth/internal/claims"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/utils"
	"github.com/MKhiriev/tenant-auth/models"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It extracts the token from the "Authorization" header, verifies it with
// [service.TokenVerifier] and stores the resulting [claims.Claims] in the
// request context. Requests are rejected with 401 when the header is absent
// or malformed or the token fails verification, and with 403 when the
// verified token carries no tenant.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		c, err := h.services.TokenVerifier.Verify(tokenString)
		if err != nil {
			log.Info().Err(err).Msg("bearer token rejected")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if _, ok := c.TenantID(); !ok {
			log.Warn().Err(ErrMissingTenantClaim).Str("principal", c.PrincipalName()).Send()
			utils.WriteError(w, app.MsgMissingTenant, http.StatusForbidden)
			return
		}

		l := log.With().
			Str("principal", c.PrincipalName()).
			Str("principal_kind", string(c.Kind())).
			Logger()
		ctx := l.WithContext(claims.WithContext(r.Context(), c))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireGroup rejects principals that belong to none of roles with 403. It
// must run after auth.
func (h *Handler) requireGroup(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := claims.FromContext(r.Context())
			if !ok {
				utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			if !c.HasAnyGroup(roles...) {
				logger.FromRequest(r).Info().Strs("groups", c.Groups()).Msg("insufficient role")
				utils.WriteError(w, app.MsgAccessDenied, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the token from a header of the form
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
