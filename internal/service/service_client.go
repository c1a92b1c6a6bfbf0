// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/tenant-auth/internal/crypto"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/store"
	"github.com/MKhiriev/tenant-auth/internal/validators"
	"github.com/MKhiriev/tenant-auth/models"
)

// clientService is the concrete implementation of ClientService.
type clientService struct {
	clientRepository store.ClientRepository

	hasher    crypto.SecretHasher
	generator crypto.CredentialGenerator
	validator validators.Validator

	logger *logger.Logger
}

// NewClientService constructs a ClientService over the client repository.
func NewClientService(
	clientRepository store.ClientRepository,
	hasher crypto.SecretHasher,
	generator crypto.CredentialGenerator,
	logger *logger.Logger,
) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		hasher:           hasher,
		generator:        generator,
		validator:        validators.NewAuthValidator(),
		logger:           logger,
	}
}

// CreateClient registers a new API client in the tenant of actor and returns
// its plaintext secret. The secret is not recoverable afterwards.
func (c *clientService) CreateClient(ctx context.Context, actor models.Principal, request models.CreateClientRequest) (models.CreateClientResponse, error) {
	log := logger.FromContext(ctx)

	if err := c.authorize(ctx, actor, validators.FieldTenantID, validators.FieldUserID); err != nil {
		return models.CreateClientResponse{}, err
	}

	if err := c.validator.Validate(ctx, request); err != nil {
		return models.CreateClientResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	clientID, err := c.generator.GenerateClientID()
	if err != nil {
		log.Err(err).Msg("generating client id failed")
		return models.CreateClientResponse{}, fmt.Errorf("generating client id failed: %w", err)
	}

	secret, err := c.generator.GenerateClientSecret()
	if err != nil {
		log.Err(err).Msg("generating client secret failed")
		return models.CreateClientResponse{}, fmt.Errorf("generating client secret failed: %w", err)
	}

	secretHash, err := c.hasher.Hash(secret)
	if err != nil {
		log.Err(err).Msg("hashing client secret failed")
		return models.CreateClientResponse{}, fmt.Errorf("hashing client secret failed: %w", err)
	}

	createdBy := *actor.UserID
	saved, err := c.clientRepository.CreateClient(ctx, models.ApiClient{
		ClientID:         clientID,
		ClientSecretHash: secretHash,
		TenantID:         *actor.TenantID,
		Name:             strings.TrimSpace(request.Name),
		Description:      request.Description,
		Scopes:           request.Scopes,
		ExpiresAt:        request.ExpiresAt,
		Active:           true,
		CreatedBy:        &createdBy,
	})
	if err != nil {
		log.Err(err).Int64("tenant_id", *actor.TenantID).Msg("saving api client failed")
		return models.CreateClientResponse{}, fmt.Errorf("saving api client failed: %w", err)
	}

	log.Info().
		Int64("id", saved.ID).
		Str("client_id", saved.ClientID).
		Int64("tenant_id", saved.TenantID).
		Int64("created_by", createdBy).
		Msg("api client created")

	return models.CreateClientResponse{
		ID:           saved.ID,
		ClientID:     saved.ClientID,
		ClientSecret: secret,
		Name:         saved.Name,
		Scopes:       saved.Scopes,
		ExpiresAt:    saved.ExpiresAt,
		Message:      models.CreateClientMessage,
	}, nil
}

// RevokeClient deactivates the client with id inside the tenant of actor.
// Revoking an already revoked client succeeds.
func (c *clientService) RevokeClient(ctx context.Context, actor models.Principal, id int64) error {
	log := logger.FromContext(ctx)

	if err := c.authorize(ctx, actor, validators.FieldTenantID); err != nil {
		return err
	}

	if err := c.clientRepository.DeactivateClient(ctx, id, *actor.TenantID); err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return ErrClientNotFound
		}
		log.Err(err).Int64("id", id).Msg("deactivating api client failed")
		return fmt.Errorf("deactivating api client failed: %w", err)
	}

	log.Info().Int64("id", id).Int64("tenant_id", *actor.TenantID).Msg("api client revoked")
	return nil
}

// ListClients returns the clients of the tenant of actor, newest first.
func (c *clientService) ListClients(ctx context.Context, actor models.Principal) ([]models.ApiClient, error) {
	if err := c.authorize(ctx, actor, validators.FieldTenantID); err != nil {
		return nil, err
	}

	clients, err := c.clientRepository.ListClients(ctx, *actor.TenantID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("tenant_id", *actor.TenantID).Msg("listing api clients failed")
		return nil, fmt.Errorf("listing api clients failed: %w", err)
	}

	return clients, nil
}

// GetClient returns one client of the tenant of actor.
func (c *clientService) GetClient(ctx context.Context, actor models.Principal, id int64) (models.ApiClient, error) {
	if err := c.authorize(ctx, actor, validators.FieldTenantID); err != nil {
		return models.ApiClient{}, err
	}

	client, err := c.clientRepository.FindClientByID(ctx, id, *actor.TenantID)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return models.ApiClient{}, ErrClientNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("fetching api client failed")
		return models.ApiClient{}, fmt.Errorf("fetching api client failed: %w", err)
	}

	return client, nil
}

// authorize checks the required principal fields first and the ADMIN role
// second.
func (c *clientService) authorize(ctx context.Context, actor models.Principal, fields ...string) error {
	if err := c.validator.Validate(ctx, actor, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if actor.Role != models.RoleAdmin.String() {
		logger.FromContext(ctx).Info().
			Str("principal", actor.Name).
			Str("role", actor.Role).
			Msg("client management denied: not an administrator")
		return ErrForbidden
	}

	return nil
}
