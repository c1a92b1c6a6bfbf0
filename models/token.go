// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PrincipalKind discriminates the two kinds of authenticated actors. It is
// carried in every token as the "tokenType" claim.
type PrincipalKind string

const (
	PrincipalUser   PrincipalKind = "user"
	PrincipalClient PrincipalKind = "client"
)

// Device categories accepted by the password grant. Anything unrecognised is
// treated as DeviceWeb.
const (
	DeviceWeb = "web"
	DeviceApp = "app"
)

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	// Token is the compact JWS serialization (header.payload.signature).
	Token string

	// ExpiresIn is the lifetime of the token in seconds.
	ExpiresIn int64

	ExpiresAt time.Time
}

// String returns the compact serialized token.
// It implements the [fmt.Stringer] interface.
func (t IssuedToken) String() string {
	return t.Token
}

// Principal is the authenticated actor as seen by the service layer. It is
// built only from verified token claims, never from request input.
//
// TenantID and UserID are nil when the corresponding claim is absent or
// unparseable; UserID is always nil for client principals.
type Principal struct {
	Kind     PrincipalKind `json:"principalKind"`
	Name     string        `json:"name"`
	TenantID *int64        `json:"tenantId,omitempty"`
	UserID   *int64        `json:"userId,omitempty"`
	Role     string        `json:"role"`
	Scopes   string        `json:"scopes,omitempty"`
}
