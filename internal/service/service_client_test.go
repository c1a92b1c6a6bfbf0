// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/crypto"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/internal/mock"
	"github.com/MKhiriev/tenant-auth/internal/store"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T { return &v }

func adminActor() models.Principal {
	return models.Principal{
		Kind:     models.PrincipalUser,
		Name:     "admin",
		TenantID: ptr(int64(42)),
		UserID:   ptr(int64(7)),
		Role:     "ADMIN",
	}
}

type clientMocks struct {
	clients   *mock.MockClientRepository
	hasher    *mock.MockSecretHasher
	generator *mock.MockCredentialGenerator
}

func newTestClientSvc(t *testing.T) (ClientService, clientMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := clientMocks{
		clients:   mock.NewMockClientRepository(ctrl),
		hasher:    mock.NewMockSecretHasher(ctrl),
		generator: mock.NewMockCredentialGenerator(ctrl),
	}

	return NewClientService(m.clients, m.hasher, m.generator, logger.Nop()), m
}

// ── CreateClient ─────────────────────────────────────────────────────────────

func TestClientService_CreateClient_Success(t *testing.T) {
	svc, m := newTestClientSvc(t)
	ctx := context.Background()
	expires := time.Now().Add(24 * time.Hour).UTC()

	gomock.InOrder(
		m.generator.EXPECT().GenerateClientID().Return("client_0123456789abcdef01234567", nil),
		m.generator.EXPECT().GenerateClientSecret().Return("secret_plain", nil),
		m.hasher.EXPECT().Hash("secret_plain").Return("$2a$12$hash", nil),
		m.clients.EXPECT().CreateClient(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.ApiClient) (models.ApiClient, error) {
				assert.Equal(t, "client_0123456789abcdef01234567", c.ClientID)
				assert.Equal(t, "$2a$12$hash", c.ClientSecretHash)
				assert.Equal(t, int64(42), c.TenantID)
				assert.Equal(t, "ERP", c.Name)
				assert.Equal(t, "nightly", c.Description)
				assert.Equal(t, "read,write", c.Scopes)
				assert.True(t, c.Active)
				require.NotNil(t, c.CreatedBy)
				assert.Equal(t, int64(7), *c.CreatedBy)
				require.NotNil(t, c.ExpiresAt)
				assert.Equal(t, expires, *c.ExpiresAt)
				c.ID = 11
				c.CreatedAt = time.Now()
				return c, nil
			},
		),
	)

	resp, err := svc.CreateClient(ctx, adminActor(), models.CreateClientRequest{
		Name:        " ERP ",
		Description: "nightly",
		Scopes:      "read,write",
		ExpiresAt:   &expires,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "client_0123456789abcdef01234567", resp.ClientID)
	assert.Equal(t, "secret_plain", resp.ClientSecret)
	assert.Equal(t, "ERP", resp.Name)
	assert.Equal(t, "read,write", resp.Scopes)
	assert.Equal(t, models.CreateClientMessage, resp.Message)
}

// TestClientService_CreateClient_SecretVerifiesAgainstStoredHash runs the real
// hasher and generator and checks the returned secret against what was stored.
func TestClientService_CreateClient_SecretVerifiesAgainstStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	svc := NewClientService(repo, hasher, crypto.NewCredentialGenerator(), logger.Nop())

	var stored models.ApiClient
	repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.ApiClient) (models.ApiClient, error) {
			stored = c
			c.ID = 1
			return c, nil
		},
	)

	resp, err := svc.CreateClient(context.Background(), adminActor(), models.CreateClientRequest{Name: "ERP"})
	require.NoError(t, err)

	assert.NotEqual(t, resp.ClientSecret, stored.ClientSecretHash)
	assert.True(t, hasher.Verify(resp.ClientSecret, stored.ClientSecretHash))
	assert.False(t, hasher.Verify(resp.ClientSecret+"x", stored.ClientSecretHash))
	assert.Regexp(t, `^client_[0-9a-f]{24}$`, resp.ClientID)
	assert.Regexp(t, `^secret_`, resp.ClientSecret)
}

func TestClientService_CreateClient_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		actor   models.Principal
		request models.CreateClientRequest
		want    error
	}{
		{
			name:    "missing tenant",
			actor:   models.Principal{UserID: ptr(int64(7)), Role: "ADMIN"},
			request: models.CreateClientRequest{Name: "ERP"},
			want:    ErrValidation,
		},
		{
			name:    "missing user id",
			actor:   models.Principal{TenantID: ptr(int64(42)), Role: "ADMIN"},
			request: models.CreateClientRequest{Name: "ERP"},
			want:    ErrValidation,
		},
		{
			name:    "not an admin",
			actor:   models.Principal{TenantID: ptr(int64(42)), UserID: ptr(int64(7)), Role: "USER"},
			request: models.CreateClientRequest{Name: "ERP"},
			want:    ErrForbidden,
		},
		{
			name:    "client token",
			actor:   models.Principal{Kind: models.PrincipalClient, TenantID: ptr(int64(42)), Role: "CLIENT"},
			request: models.CreateClientRequest{Name: "ERP"},
			want:    ErrValidation,
		},
		{
			name:    "empty name",
			actor:   adminActor(),
			request: models.CreateClientRequest{Name: ""},
			want:    ErrValidation,
		},
		{
			name:    "expiry in the past",
			actor:   adminActor(),
			request: models.CreateClientRequest{Name: "ERP", ExpiresAt: ptr(time.Now().Add(-time.Hour))},
			want:    ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no mock expectations: nothing may be generated or stored
			svc, _ := newTestClientSvc(t)

			_, err := svc.CreateClient(context.Background(), tt.actor, tt.request)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClientService_CreateClient_DuplicateClientIDSurfaces(t *testing.T) {
	svc, m := newTestClientSvc(t)

	m.generator.EXPECT().GenerateClientID().Return("client_dup", nil)
	m.generator.EXPECT().GenerateClientSecret().Return("secret_x", nil)
	m.hasher.EXPECT().Hash("secret_x").Return("h", nil)
	m.clients.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(models.ApiClient{}, store.ErrClientIDAlreadyExists)

	_, err := svc.CreateClient(context.Background(), adminActor(), models.CreateClientRequest{Name: "ERP"})
	assert.ErrorIs(t, err, store.ErrClientIDAlreadyExists)
}

func TestClientService_CreateClient_GeneratorError(t *testing.T) {
	svc, m := newTestClientSvc(t)
	genErr := errors.New("entropy exhausted")

	m.generator.EXPECT().GenerateClientID().Return("", genErr)

	_, err := svc.CreateClient(context.Background(), adminActor(), models.CreateClientRequest{Name: "ERP"})
	assert.ErrorIs(t, err, genErr)
}

func TestClientService_CreateClient_HashError(t *testing.T) {
	svc, m := newTestClientSvc(t)
	hashErr := errors.New("hash failed")

	m.generator.EXPECT().GenerateClientID().Return("client_x", nil)
	m.generator.EXPECT().GenerateClientSecret().Return("secret_x", nil)
	m.hasher.EXPECT().Hash("secret_x").Return("", hashErr)

	_, err := svc.CreateClient(context.Background(), adminActor(), models.CreateClientRequest{Name: "ERP"})
	assert.ErrorIs(t, err, hashErr)
}

// ── RevokeClient ─────────────────────────────────────────────────────────────

func TestClientService_RevokeClient(t *testing.T) {
	svc, m := newTestClientSvc(t)
	ctx := context.Background()

	m.clients.EXPECT().DeactivateClient(ctx, int64(3), int64(42)).Return(nil)

	require.NoError(t, svc.RevokeClient(ctx, adminActor(), 3))
}

func TestClientService_RevokeClient_OtherTenant(t *testing.T) {
	svc, m := newTestClientSvc(t)
	ctx := context.Background()

	m.clients.EXPECT().DeactivateClient(ctx, int64(3), int64(42)).Return(store.ErrClientNotFound)

	assert.ErrorIs(t, svc.RevokeClient(ctx, adminActor(), 3), ErrClientNotFound)
}

func TestClientService_RevokeClient_Rejections(t *testing.T) {
	svc, _ := newTestClientSvc(t)

	err := svc.RevokeClient(context.Background(), models.Principal{Role: "ADMIN"}, 3)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.RevokeClient(context.Background(), models.Principal{TenantID: ptr(int64(42)), Role: "ACCOUNTANT"}, 3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClientService_RevokeClient_StoreError(t *testing.T) {
	svc, m := newTestClientSvc(t)
	dbErr := errors.New("boom")

	m.clients.EXPECT().DeactivateClient(gomock.Any(), int64(3), int64(42)).Return(dbErr)

	err := svc.RevokeClient(context.Background(), adminActor(), 3)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrClientNotFound)
}

// ── ListClients / GetClient ──────────────────────────────────────────────────

func TestClientService_ListClients(t *testing.T) {
	svc, m := newTestClientSvc(t)
	ctx := context.Background()
	want := []models.ApiClient{{ID: 2, ClientID: "client_b"}, {ID: 1, ClientID: "client_a"}}

	m.clients.EXPECT().ListClients(ctx, int64(42)).Return(want, nil)

	got, err := svc.ListClients(ctx, adminActor())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientService_ListClients_Forbidden(t *testing.T) {
	svc, _ := newTestClientSvc(t)

	_, err := svc.ListClients(context.Background(), models.Principal{TenantID: ptr(int64(42)), Role: "USER"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClientService_GetClient(t *testing.T) {
	svc, m := newTestClientSvc(t)
	ctx := context.Background()

	m.clients.EXPECT().FindClientByID(ctx, int64(3), int64(42)).Return(models.ApiClient{ID: 3, ClientID: "client_c"}, nil)

	got, err := svc.GetClient(ctx, adminActor(), 3)
	require.NoError(t, err)
	assert.Equal(t, "client_c", got.ClientID)
}

func TestClientService_GetClient_NotFound(t *testing.T) {
	svc, m := newTestClientSvc(t)
	ctx := context.Background()

	m.clients.EXPECT().FindClientByID(ctx, int64(3), int64(42)).Return(models.ApiClient{}, store.ErrClientNotFound)

	_, err := svc.GetClient(ctx, adminActor(), 3)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
