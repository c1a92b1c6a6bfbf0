// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/tenant-auth/internal/app"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/service"
	"github.com/MKhiriev/tenant-auth/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:           http.StatusBadRequest,
	service.ErrUnsupportedGrantType: http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrAccountInactive:      http.StatusUnauthorized,
	service.ErrInvalidClient:        http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrClientNotFound:       http.StatusNotFound,

	ErrInvalidClientID: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status code. Known errors are reported with
// their message; anything else is logged in full and answered with a generic
// message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
