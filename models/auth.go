// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GrantTypeClientCredentials is the only grant_type accepted by the token
// endpoint.
const GrantTypeClientCredentials = "client_credentials"

// CreateClientMessage accompanies every CreateClientResponse.
const CreateClientMessage = "IMPORTANT: Save the client_secret now. It will not be shown again!"

// LoginRequest is the body of the password grant.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// DeviceCategory selects the token lifetime ("web" or "app").
	DeviceCategory string `json:"deviceCategory,omitempty"`

	// DeviceType is the legacy name of DeviceCategory.
	DeviceType string `json:"deviceType,omitempty"`
}

// Device returns the requested device category, preferring DeviceCategory
// over the legacy DeviceType field.
func (r LoginRequest) Device() string {
	if r.DeviceCategory != "" {
		return r.DeviceCategory
	}
	return r.DeviceType
}

// TokenRequest is the client-credentials grant request.
type TokenRequest struct {
	GrantType    string
	ClientID     string
	ClientSecret string
}

// LoginResponse is returned by both grants. For client tokens UserID is nil and
// Username carries the client identifier.
type LoginResponse struct {
	Token         string        `json:"token"`
	UserID        *int64        `json:"userId,omitempty"`
	Username      string        `json:"username"`
	TenantID      int64         `json:"tenantId"`
	Role          string        `json:"role"`
	ExpiresIn     int64         `json:"expiresIn"`
	PrincipalKind PrincipalKind `json:"principalKind"`
}

// CreateClientRequest is the body of the administrative client creation call.
type CreateClientRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Scopes      string     `json:"scopes"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// CreateClientResponse is the only place where a client secret is ever
// returned in plaintext.
type CreateClientResponse struct {
	ID           int64      `json:"id"`
	ClientID     string     `json:"clientId"`
	ClientSecret string     `json:"clientSecret"`
	Name         string     `json:"name"`
	Scopes       string     `json:"scopes"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Message      string     `json:"message"`
}

// ErrorResponse is the JSON error body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
