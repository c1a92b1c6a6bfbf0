// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/tenant-auth/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		role      string
		lastLogin sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.TenantID,
		&role,
		&user.Active,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	if !user.Role.Valid() {
		return models.User{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}

	return user, nil
}

func scanClient(row rowScanner) (models.ApiClient, error) {
	var (
		client      models.ApiClient
		description sql.NullString
		expiresAt   sql.NullTime
		createdBy   sql.NullInt64
	)

	err := row.Scan(
		&client.ID,
		&client.ClientID,
		&client.ClientSecretHash,
		&client.TenantID,
		&client.Name,
		&description,
		&client.Scopes,
		&client.CreatedAt,
		&expiresAt,
		&client.Active,
		&createdBy,
	)
	if err != nil {
		return models.ApiClient{}, err
	}

	client.Description = description.String
	if expiresAt.Valid {
		t := expiresAt.Time
		client.ExpiresAt = &t
	}
	if createdBy.Valid {
		id := createdBy.Int64
		client.CreatedBy = &id
	}

	return client, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
