// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/crypto"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/store"
	"github.com/MKhiriev/tenant-auth/internal/token"
)

// Services bundles everything the transport layer calls into.
type Services struct {
	AuthService   AuthService
	ClientService ClientService
	TokenVerifier TokenVerifier
}

// NewServices builds the hasher, the token issuer and verifier from cfg and
// wires them to the repositories in storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	tokenConfig, err := token.ConfigFromApp(cfg)
	if err != nil {
		return nil, fmt.Errorf("error reading token configuration: %w", err)
	}

	issuer, err := token.NewIssuer(tokenConfig)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	verifier, err := token.NewVerifier(tokenConfig)
	if err != nil {
		return nil, fmt.Errorf("error creating token verifier: %w", err)
	}

	hasher := crypto.NewBcryptHasher(cfg.HashCost)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.ClientRepository, hasher, issuer, logger),
		ClientService: NewClientService(storages.ClientRepository, hasher, crypto.NewCredentialGenerator(), logger),
		TokenVerifier: verifier,
	}, nil
}
