// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a termination signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
