// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/tenant-auth/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.buildInfo, http.StatusOK)
}
