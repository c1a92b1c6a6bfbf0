// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/tenant-auth/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders PostgreSQL positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"customer_id",
	"role",
	"active",
	"last_login",
	"created_at",
	"updated_at",
}

var clientColumns = []string{
	"id",
	"client_id",
	"client_secret_hash",
	"customer_id",
	"name",
	"description",
	"scopes",
	"created_at",
	"expires_at",
	"active",
	"created_by",
}

func findUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func updateLastLoginQuery(userID int64, at time.Time) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func findActiveClientQuery(clientID string) (string, []any, error) {
	return psql.Select(clientColumns...).
		From(models.ApiClient{}.TableName()).
		Where(sq.Eq{"client_id": clientID}).
		Where(sq.Eq{"active": true}).
		ToSql()
}

func createClientQuery(client models.ApiClient) (string, []any, error) {
	return psql.Insert(models.ApiClient{}.TableName()).
		Columns(
			"client_id",
			"client_secret_hash",
			"customer_id",
			"name",
			"description",
			"scopes",
			"expires_at",
			"active",
			"created_by",
		).
		Values(
			client.ClientID,
			client.ClientSecretHash,
			client.TenantID,
			client.Name,
			nullString(client.Description),
			client.Scopes,
			nullTime(client.ExpiresAt),
			client.Active,
			nullInt64(client.CreatedBy),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func deactivateClientQuery(id, tenantID int64) (string, []any, error) {
	return psql.Update(models.ApiClient{}.TableName()).
		Set("active", false).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"customer_id": tenantID}).
		ToSql()
}

func listClientsQuery(tenantID int64) (string, []any, error) {
	return psql.Select(clientColumns...).
		From(models.ApiClient{}.TableName()).
		Where(sq.Eq{"customer_id": tenantID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func findClientByIDQuery(id, tenantID int64) (string, []any, error) {
	return psql.Select(clientColumns...).
		From(models.ApiClient{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"customer_id": tenantID}).
		ToSql()
}
