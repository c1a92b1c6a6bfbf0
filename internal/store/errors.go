// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrClientNotFound is returned when no API client matches the lookup,
	// including lookups scoped to another tenant and inactive clients on the
	// credential path.
	ErrClientNotFound = errors.New("api client was not found")

	// ErrClientIDAlreadyExists is returned when an INSERT collides with an
	// existing client_id.
	ErrClientIDAlreadyExists = errors.New("api client id already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnknownRole is returned when a stored user carries a role outside
	// the known roles. Such a user is never signed into a token.
	ErrUnknownRole = errors.New("user has an unknown role")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
