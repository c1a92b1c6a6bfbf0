// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the service.
//
// It exposes the password and client-credentials grants, the API client
// administration routes and the Prometheus endpoint. Bearer authentication,
// request tracing, access logging and request metrics are handled here
// before requests are delegated to the service layer.
package http
