// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations registered: the first statement goose sends fails
	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_create_customers.sql",
		"00002_create_users.sql",
		"00003_create_api_clients.sql",
	}, files)

	for _, name := range files {
		data, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", name)
		assert.Contains(t, string(data), "-- +goose Down", name)
	}
}
