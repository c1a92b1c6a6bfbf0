// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/tenant-auth/internal/claims"
	"github.com/MKhiriev/tenant-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the two grants of the service.
type AuthService interface {
	// Login runs the password grant.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	// ClientCredentialsLogin runs the client-credentials grant.
	ClientCredentialsLogin(ctx context.Context, request models.TokenRequest) (models.LoginResponse, error)
}

// ClientService manages the API clients of the actor's tenant. Every method
// requires an ADMIN actor and is scoped to the tenant of the actor.
type ClientService interface {
	CreateClient(ctx context.Context, actor models.Principal, request models.CreateClientRequest) (models.CreateClientResponse, error)
	RevokeClient(ctx context.Context, actor models.Principal, id int64) error
	ListClients(ctx context.Context, actor models.Principal) ([]models.ApiClient, error)
	GetClient(ctx context.Context, actor models.Principal, id int64) (models.ApiClient, error)
}

// TokenIssuer signs user and client tokens.
type TokenIssuer interface {
	IssueUserToken(userID int64, username string, tenantID int64, role models.Role, deviceCategory string) (models.IssuedToken, error)
	IssueClientToken(clientID string, tenantID int64, scopes string) (models.IssuedToken, error)
}

// TokenVerifier checks bearer tokens presented to protected routes.
type TokenVerifier interface {
	Verify(tokenString string) (claims.Claims, error)
}
