// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the HTTP layer writes into error
// response bodies. Keeping them in one place keeps the wording of the API
// stable.
package app

// Password grant.
const (
	// MsgInvalidCredentials is shared by an unknown username and a wrong
	// password so the two cannot be told apart.
	MsgInvalidCredentials = "Invalid username or password"

	MsgAccountInactive = "User account is not active"

	// MsgLoginFailed hides the cause of unexpected login failures.
	MsgLoginFailed = "An error occurred during login"
)

// Client-credentials grant. The values follow the OAuth 2.0 error codes.
const (
	MsgUnsupportedGrantType = "unsupported_grant_type"
	MsgInvalidClient        = "invalid_client"
	MsgInvalidRequest       = "invalid_request"
	MsgServerError          = "server_error"
)

// Generic messages.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	MsgInvalidClientID = "invalid client id"

	// MsgUnauthorized is returned for a missing, malformed, expired or
	// forged bearer token.
	MsgUnauthorized = "unauthorized"

	// MsgMissingTenant is returned when a verified token carries no tenant.
	MsgMissingTenant = "token carries no tenant"

	MsgAccessDenied = "access denied"

	MsgNotFound         = "not found"
	MsgMethodNotAllowed = "method not allowed"

	MsgInternalServerError = "internal server error"
)
