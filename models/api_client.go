// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ApiClient is a machine principal that authenticates with the
// client-credentials grant.
//
// The plaintext secret exists only in [CreateClientResponse]; the record keeps
// the bcrypt hash alone. Revocation is a soft delete (Active=false) so the
// audit trail survives.
type ApiClient struct {
	ID int64 `json:"id"`

	// ClientID is the public, prefixed, globally unique identifier
	// (e.g. "client_3f9c...").
	ClientID string `json:"clientId"`

	ClientSecretHash string `json:"-"`

	TenantID    int64  `json:"tenantId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Scopes is the raw comma-delimited scope list. It is opaque to this
	// service and copied verbatim into client tokens.
	Scopes string `json:"scopes"`

	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt bounds the lifetime of the credentials. It is checked on every
	// client-credentials grant; nothing sweeps expired clients.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	Active bool `json:"active"`

	// CreatedBy is the id of the administrator who created the client.
	CreatedBy *int64 `json:"createdBy,omitempty"`
}

// TableName returns the name of the database table
// associated with the ApiClient model.
func (c ApiClient) TableName() string {
	return "api_clients"
}

// IsExpired reports whether the client has an expiry that lies before now.
func (c ApiClient) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
