// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientRowColumns = []string{
	"id", "client_id", "client_secret_hash", "customer_id", "name", "description",
	"scopes", "created_at", "expires_at", "active", "created_by",
}

const selectClientColumns = "SELECT id, client_id, client_secret_hash, customer_id, name, description, scopes, created_at, expires_at, active, created_by FROM api_clients"

func TestFindActiveClientByClientID_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expires := created.AddDate(1, 0, 0)

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns + " WHERE client_id = $1 AND active = $2")).
		WithArgs("client_abc", true).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(int64(3), "client_abc", "$2a$12$h", int64(42), "ERP", "nightly sync", "read:invoices,write:orders", created, expires, true, int64(7)))

	client, err := repo.FindActiveClientByClientID(context.Background(), "client_abc")
	require.NoError(t, err)

	assert.Equal(t, int64(3), client.ID)
	assert.Equal(t, "client_abc", client.ClientID)
	assert.Equal(t, "$2a$12$h", client.ClientSecretHash)
	assert.Equal(t, int64(42), client.TenantID)
	assert.Equal(t, "ERP", client.Name)
	assert.Equal(t, "nightly sync", client.Description)
	assert.Equal(t, "read:invoices,write:orders", client.Scopes)
	require.NotNil(t, client.ExpiresAt)
	assert.Equal(t, expires, *client.ExpiresAt)
	require.NotNil(t, client.CreatedBy)
	assert.Equal(t, int64(7), *client.CreatedBy)
	assert.True(t, client.Active)
}

func TestFindActiveClientByClientID_NullableColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns)).
		WithArgs("client_abc", true).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(int64(3), "client_abc", "h", int64(42), "ERP", nil, "", time.Now(), nil, true, nil))

	client, err := repo.FindActiveClientByClientID(context.Background(), "client_abc")
	require.NoError(t, err)
	assert.Empty(t, client.Description)
	assert.Empty(t, client.Scopes)
	assert.Nil(t, client.ExpiresAt)
	assert.Nil(t, client.CreatedBy)
}

func TestFindActiveClientByClientID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns)).
		WithArgs("client_gone", true).
		WillReturnRows(sqlmock.NewRows(clientRowColumns))

	_, err := repo.FindActiveClientByClientID(context.Background(), "client_gone")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateClient_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	createdBy := int64(7)
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	in := models.ApiClient{
		ClientID:         "client_0123456789abcdef01234567",
		ClientSecretHash: "$2a$12$h",
		TenantID:         42,
		Name:             "ERP",
		Scopes:           "read",
		Active:           true,
		CreatedBy:        &createdBy,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO api_clients")).
		WithArgs(in.ClientID, in.ClientSecretHash, in.TenantID, in.Name, nil, in.Scopes, nil, true, createdBy).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), created))

	out, err := repo.CreateClient(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(11), out.ID)
	assert.Equal(t, created, out.CreatedAt)
	assert.Equal(t, in.ClientID, out.ClientID)
	assert.Equal(t, in.TenantID, out.TenantID)
}

func TestCreateClient_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO api_clients")).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateClient(context.Background(), models.ApiClient{ClientID: "client_dup", TenantID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrClientIDAlreadyExists)
}

func TestCreateClient_UnexpectedError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO api_clients")).
		WillReturnError(errors.New("broken pipe"))

	_, err := repo.CreateClient(context.Background(), models.ApiClient{ClientID: "client_x", TenantID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrClientIDAlreadyExists)
}

func TestDeactivateClient(t *testing.T) {
	const deactivate = "UPDATE api_clients SET active = $1 WHERE id = $2 AND customer_id = $3"

	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deactivated", affected: 1},
		{name: "other tenant or missing", affected: 0, wantErr: ErrClientNotFound},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewClientRepository(db, logger.Nop())

			exp := mock.ExpectExec(regexp.QuoteMeta(deactivate)).WithArgs(false, int64(3), int64(42))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeactivateClient(context.Background(), 3, 42)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListClients_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	newer := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	older := newer.AddDate(0, -1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns + " WHERE customer_id = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(int64(2), "client_b", "h2", int64(42), "B", nil, "", newer, nil, true, nil).
			AddRow(int64(1), "client_a", "h1", int64(42), "A", nil, "read", older, nil, false, nil))

	clients, err := repo.ListClients(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "client_b", clients[0].ClientID)
	assert.Equal(t, "client_a", clients[1].ClientID)
	assert.False(t, clients[1].Active)
}

func TestListClients_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(clientRowColumns))

	clients, err := repo.ListClients(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestListClients_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns)).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListClients(context.Background(), 42)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListClients_RowError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns)).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(int64(1), "client_a", "h", int64(42), "A", nil, "", time.Now(), nil, true, nil).
			RowError(0, errors.New("row broke")))

	_, err := repo.ListClients(context.Background(), 42)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindClientByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns + " WHERE id = $1 AND customer_id = $2")).
		WithArgs(int64(3), int64(42)).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(int64(3), "client_c", "h", int64(42), "C", "desc", "", time.Now(), nil, true, nil))

	client, err := repo.FindClientByID(context.Background(), 3, 42)
	require.NoError(t, err)
	assert.Equal(t, "client_c", client.ClientID)
}

func TestFindClientByID_OtherTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectClientColumns)).
		WithArgs(int64(3), int64(99)).
		WillReturnRows(sqlmock.NewRows(clientRowColumns))

	_, err := repo.FindClientByID(context.Background(), 3, 99)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
