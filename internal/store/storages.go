// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/logger"
)

// Storages groups the repositories of the service over one connection pool.
type Storages struct {
	UserRepository   UserRepository
	ClientRepository ClientRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		ClientRepository: NewClientRepository(db, log),
		db:               db,
	}
}

// SQLDB returns the underlying connection pool, e.g. for pool statistics.
// It is nil for storages built without a database.
func (s *Storages) SQLDB() *sql.DB {
	if s.db == nil {
		return nil
	}
	return s.db.DB
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
