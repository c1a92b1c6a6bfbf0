// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/tenant-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads human accounts for the password grant.
type UserRepository interface {
	// FindUserByUsername returns [ErrUserNotFound] when no user matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateLastLogin records a successful login in a single UPDATE.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}

// ClientRepository persists machine clients. Every method is a single SQL
// statement; tenant-scoped methods never touch rows of another tenant.
type ClientRepository interface {
	// FindActiveClientByClientID returns [ErrClientNotFound] for unknown and
	// inactive clients alike.
	FindActiveClientByClientID(ctx context.Context, clientID string) (models.ApiClient, error)
	// CreateClient inserts client and returns it with ID and CreatedAt set.
	CreateClient(ctx context.Context, client models.ApiClient) (models.ApiClient, error)
	// DeactivateClient soft-deletes the client with id inside tenantID.
	DeactivateClient(ctx context.Context, id, tenantID int64) error
	// ListClients returns all clients of tenantID, newest first.
	ListClients(ctx context.Context, tenantID int64) ([]models.ApiClient, error)
	// FindClientByID returns the client with id inside tenantID.
	FindClientByID(ctx context.Context, id, tenantID int64) (models.ApiClient, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
