// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/jackc/pgerrcode"
)

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository] over the "api_clients" table.
type clientRepository struct {
	*DB
	logger *logger.Logger
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating api client repository")
	return &clientRepository{
		DB:     db,
		logger: logger,
	}
}

// FindActiveClientByClientID looks up a client by its public identifier.
// The active filter is part of the query, so a revoked client is
// indistinguishable from an unknown one.
func (c *clientRepository) FindActiveClientByClientID(ctx context.Context, clientID string) (models.ApiClient, error) {
	log := logger.FromContext(ctx)

	query, args, err := findActiveClientQuery(clientID)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.FindActiveClientByClientID").Msg("failed to build query")
		return models.ApiClient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var client models.ApiClient
	err = c.withRetry(ctx, "find active client", func() error {
		var scanErr error
		client, scanErr = scanClient(c.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ApiClient{}, ErrClientNotFound
	case err != nil:
		log.Err(err).
			Str("func", "clientRepository.FindActiveClientByClientID").
			Str("client_id", clientID).
			Str("pg_code", postgresError(err)).
			Msg("error finding api client")
		return models.ApiClient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return client, nil
}

// CreateClient inserts a new client and returns it with the database
// assigned id and created_at.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrClientIDAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (c *clientRepository) CreateClient(ctx context.Context, client models.ApiClient) (models.ApiClient, error) {
	log := logger.FromContext(ctx)

	query, args, err := createClientQuery(client)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.CreateClient").Msg("failed to build query")
		return models.ApiClient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.QueryRowContext(ctx, query, args...).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.CreateClient").
			Int64("tenant_id", client.TenantID).
			Str("client_id", client.ClientID).
			Str("pg_code", postgresError(err)).
			Msg("error inserting api client")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ApiClient{}, ErrClientIDAlreadyExists
		default:
			return models.ApiClient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return client, nil
}

// DeactivateClient flips active to false for the client with id owned by
// tenantID. Deactivating an already inactive client succeeds; a client of
// another tenant yields [ErrClientNotFound].
func (c *clientRepository) DeactivateClient(ctx context.Context, id, tenantID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deactivateClientQuery(id, tenantID)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.DeactivateClient").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.DeactivateClient").
			Int64("id", id).
			Int64("tenant_id", tenantID).
			Str("pg_code", postgresError(err)).
			Msg("error deactivating api client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// ListClients returns every client of tenantID, active or not, newest first.
// Returns an empty slice when the tenant has no clients.
func (c *clientRepository) ListClients(ctx context.Context, tenantID int64) ([]models.ApiClient, error) {
	log := logger.FromContext(ctx)

	query, args, err := listClientsQuery(tenantID)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.ListClients").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.ListClients").
			Int64("tenant_id", tenantID).
			Msg("failed to execute query for listing api clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.ApiClient, 0, 16)
	for rows.Next() {
		client, scanErr := scanClient(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "clientRepository.ListClients").
				Int64("tenant_id", tenantID).
				Msg("failed to scan api client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		clients = append(clients, client)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "clientRepository.ListClients").
			Int64("tenant_id", tenantID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return clients, nil
}

// FindClientByID returns the client with id when it belongs to tenantID.
func (c *clientRepository) FindClientByID(ctx context.Context, id, tenantID int64) (models.ApiClient, error) {
	log := logger.FromContext(ctx)

	query, args, err := findClientByIDQuery(id, tenantID)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.FindClientByID").Msg("failed to build query")
		return models.ApiClient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	client, err := scanClient(c.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ApiClient{}, ErrClientNotFound
	case err != nil:
		log.Err(err).
			Str("func", "clientRepository.FindClientByID").
			Int64("id", id).
			Int64("tenant_id", tenantID).
			Msg("error finding api client")
		return models.ApiClient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return client, nil
}
