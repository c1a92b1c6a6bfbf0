// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the enumerated authorization role carried by a User and embedded in
// every user token as both the "role" claim and the single "groups" entry.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
	RoleAccountant Role = "ACCOUNTANT"

	// RoleClient is the fixed group of machine-client tokens. A human User
	// may also hold it, in which case both token kinds share the group and
	// only the "tokenType" claim tells them apart.
	RoleClient Role = "CLIENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleAccountant, RoleClient:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// User represents a human account that authenticates with the password grant.
// It belongs to exactly one tenant (customer).
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is unique across the whole system.
	Username string `json:"username"`

	// PasswordHash is the self-describing bcrypt hash of the password.
	// The plaintext is never stored and the hash never leaves the server.
	PasswordHash string `json:"-"`

	// TenantID is the owning customer.
	TenantID int64 `json:"tenantId"`

	Role   Role `json:"role"`
	Active bool `json:"active"`

	// LastLogin is advisory; it is updated on successful logins only.
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
