// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/crypto"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/store"
	"github.com/MKhiriev/tenant-auth/internal/validators"
	"github.com/MKhiriev/tenant-auth/models"
)

// authService is the concrete implementation of AuthService.
//
// Plaintext passwords and client secrets only ever reach the hasher; they are
// never logged and never stored.
type authService struct {
	userRepository   store.UserRepository
	clientRepository store.ClientRepository

	hasher    crypto.SecretHasher
	issuer    TokenIssuer
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	clientRepository store.ClientRepository,
	hasher crypto.SecretHasher,
	issuer TokenIssuer,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   userRepository,
		clientRepository: clientRepository,
		hasher:           hasher,
		issuer:           issuer,
		validator:        validators.NewAuthValidator(),
		now:              time.Now,
		logger:           logger,
	}
}

// Login authenticates a user with username and password and issues a user
// token whose lifetime depends on the requested device category.
//
// Returns:
//   - ErrInvalidCredentials for empty input, an unknown username or a wrong
//     password; the three cases are indistinguishable to the caller.
//   - ErrAccountInactive for a deactivated account.
//   - A wrapped error for storage or signing failures.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("login request rejected")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("username", request.Username).Msg("login failed: unknown username")
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("user lookup failed")
		return models.LoginResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.Active {
		log.Info().Int64("user_id", user.UserID).Msg("login failed: account is not active")
		return models.LoginResponse{}, ErrAccountInactive
	}

	if !a.hasher.Verify(request.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Msg("login failed: wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	issued, err := a.issuer.IssueUserToken(user.UserID, user.Username, user.TenantID, user.Role, request.Device())
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("issuing user token failed")
		return models.LoginResponse{}, fmt.Errorf("issuing user token failed: %w", err)
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.UserID, a.now()); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("updating last login failed")
	}

	log.Info().
		Int64("user_id", user.UserID).
		Int64("tenant_id", user.TenantID).
		Str("role", user.Role.String()).
		Msg("user logged in")

	userID := user.UserID
	return models.LoginResponse{
		Token:         issued.Token,
		UserID:        &userID,
		Username:      user.Username,
		TenantID:      user.TenantID,
		Role:          user.Role.String(),
		ExpiresIn:     issued.ExpiresIn,
		PrincipalKind: models.PrincipalUser,
	}, nil
}

// ClientCredentialsLogin authenticates an API client and issues a client
// token carrying the tenant and the raw scope string of the client.
//
// Returns:
//   - ErrUnsupportedGrantType when grant_type is not "client_credentials";
//     storage is not consulted.
//   - ErrInvalidClient for empty input, unknown or inactive clients and wrong
//     secrets.
//   - ErrClientExpired (an ErrInvalidClient) when the client has expired.
//   - A wrapped error for storage or signing failures.
func (a *authService) ClientCredentialsLogin(ctx context.Context, request models.TokenRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request, validators.FieldGrantType); err != nil {
		log.Info().Str("grant_type", request.GrantType).Msg("token request rejected: unsupported grant type")
		return models.LoginResponse{}, ErrUnsupportedGrantType
	}

	if err := a.validator.Validate(ctx, request, validators.FieldClientID, validators.FieldClientSecret); err != nil {
		log.Debug().Err(err).Msg("token request rejected")
		return models.LoginResponse{}, ErrInvalidClient
	}

	client, err := a.clientRepository.FindActiveClientByClientID(ctx, request.ClientID)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			log.Info().Str("client_id", request.ClientID).Msg("client login failed: unknown or inactive client")
			return models.LoginResponse{}, ErrInvalidClient
		}
		log.Err(err).Str("client_id", request.ClientID).Msg("client lookup failed")
		return models.LoginResponse{}, fmt.Errorf("client lookup failed: %w", err)
	}

	if !a.hasher.Verify(request.ClientSecret, client.ClientSecretHash) {
		log.Info().Str("client_id", client.ClientID).Msg("client login failed: wrong secret")
		return models.LoginResponse{}, ErrInvalidClient
	}

	if client.IsExpired(a.now()) {
		log.Info().
			Str("client_id", client.ClientID).
			Time("expires_at", *client.ExpiresAt).
			Msg("client login failed: credentials expired")
		return models.LoginResponse{}, ErrClientExpired
	}

	issued, err := a.issuer.IssueClientToken(client.ClientID, client.TenantID, client.Scopes)
	if err != nil {
		log.Err(err).Str("client_id", client.ClientID).Msg("issuing client token failed")
		return models.LoginResponse{}, fmt.Errorf("issuing client token failed: %w", err)
	}

	log.Info().
		Str("client_id", client.ClientID).
		Int64("tenant_id", client.TenantID).
		Msg("client logged in")

	return models.LoginResponse{
		Token:         issued.Token,
		Username:      client.ClientID,
		TenantID:      client.TenantID,
		Role:          models.RoleClient.String(),
		ExpiresIn:     issued.ExpiresIn,
		PrincipalKind: models.PrincipalClient,
	}, nil
}
