// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/logger"
	"github.com/MKhiriev/tenant-auth/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Password hashes
// are never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - An unknown role → wrapped [ErrScanningRow] and [ErrUnknownRole].
//   - Query build failure → [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped [ErrExecutingQuery], after
//     retryable errors were retried.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, "find user by username", func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, ErrUnknownRole):
		log.Error().Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Msg("refusing user with unknown role")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Str("pg_code", postgresError(err)).
			Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateLastLogin sets last_login of the user to at.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := updateLastLoginQuery(userID, at)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateLastLogin").
			Int64("user_id", userID).
			Str("pg_code", postgresError(err)).
			Msg("error updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
