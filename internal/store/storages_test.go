// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorages_WiresRepositoriesOverOnePool(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()

	s := newStorages(db, logger.Nop())

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.ClientRepository)
	assert.Same(t, db.DB, s.SQLDB())
	require.NoError(t, s.Close())
}

func TestStorages_ZeroValue(t *testing.T) {
	var s Storages

	assert.Nil(t, s.SQLDB())
	assert.NoError(t, s.Close())
}
