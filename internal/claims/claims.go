// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package claims exposes the identity carried by an already verified bearer
// token: tenant, actor, role and principal name.
//
// It is the only contract resource handlers consume from the authentication
// core. Tenant scoping must always come from here and never from request
// parameters.
package claims

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/tenant-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claim names shared by the token issuer and every consumer.
const (
	KeySubject    = "sub"
	KeyUPN        = "upn"
	KeyUserID     = "userId"
	KeyTenantID   = "tenantId"
	KeyCustomerID = "customerId"
	KeyRole       = "role"
	KeyGroups     = "groups"
	KeyDeviceType = "deviceType"
	KeyTokenType  = "tokenType"
	KeyClientID   = "clientId"
	KeyScopes     = "scopes"
)

// Claims is a read-only view over the claim set of a verified token.
// Accessors never panic; a missing or malformed claim reads as absent.
type Claims struct {
	raw jwt.MapClaims
}

// New wraps a verified claim set. Signature and expiry checks are the
// caller's responsibility.
func New(raw jwt.MapClaims) Claims {
	if raw == nil {
		raw = jwt.MapClaims{}
	}
	return Claims{raw: raw}
}

// TenantID returns the tenant id from "tenantId", falling back to the legacy
// "customerId" claim. ok is false when neither holds an integer.
func (c Claims) TenantID() (id int64, ok bool) {
	if id, ok = c.int64Claim(KeyTenantID); ok {
		return id, true
	}
	return c.int64Claim(KeyCustomerID)
}

// ActorID returns the user id from "userId". Client tokens carry none.
func (c Claims) ActorID() (int64, bool) {
	return c.int64Claim(KeyUserID)
}

// Role returns the "role" claim, or the first group when the token has no
// role (client tokens).
func (c Claims) Role() string {
	if role := c.stringClaim(KeyRole); role != "" {
		return role
	}
	if groups := c.Groups(); len(groups) > 0 {
		return groups[0]
	}
	return ""
}

// PrincipalName returns the token subject: a username or a client identifier.
func (c Claims) PrincipalName() string {
	if sub := c.stringClaim(KeySubject); sub != "" {
		return sub
	}
	return c.stringClaim(KeyUPN)
}

// Kind returns the "tokenType" discriminator. Unknown values read as empty.
func (c Claims) Kind() models.PrincipalKind {
	switch kind := models.PrincipalKind(c.stringClaim(KeyTokenType)); kind {
	case models.PrincipalUser, models.PrincipalClient:
		return kind
	}
	return ""
}

// Scopes returns the raw comma-delimited scopes of a client token.
func (c Claims) Scopes() string {
	return c.stringClaim(KeyScopes)
}

// ClientID returns the "clientId" claim of a client token.
func (c Claims) ClientID() string {
	return c.stringClaim(KeyClientID)
}

// DeviceType returns the "deviceType" claim of a user token.
func (c Claims) DeviceType() string {
	return c.stringClaim(KeyDeviceType)
}

// Groups returns the "groups" claim.
func (c Claims) Groups() []string {
	switch v := c.raw[KeyGroups].(type) {
	case []string:
		return v
	case []any:
		groups := make([]string, 0, len(v))
		for _, g := range v {
			if s, ok := g.(string); ok {
				groups = append(groups, s)
			}
		}
		return groups
	case string:
		return []string{v}
	}
	return nil
}

// HasAnyGroup reports whether the token belongs to at least one of roles.
// Client tokens only ever carry [models.RoleClient], which users with that
// role share; use [Claims.Kind] to tell the two apart.
func (c Claims) HasAnyGroup(roles ...models.Role) bool {
	for _, g := range c.Groups() {
		for _, r := range roles {
			if g == r.String() {
				return true
			}
		}
	}
	return false
}

// Principal converts the claims into the value the service layer works with.
func (c Claims) Principal() models.Principal {
	p := models.Principal{
		Kind:   c.Kind(),
		Name:   c.PrincipalName(),
		Role:   c.Role(),
		Scopes: c.Scopes(),
	}
	if id, ok := c.TenantID(); ok {
		p.TenantID = &id
	}
	if id, ok := c.ActorID(); ok {
		p.UserID = &id
	}
	return p
}

func (c Claims) stringClaim(key string) string {
	s, _ := c.raw[key].(string)
	return s
}

// int64Claim accepts the shapes a numeric claim takes after JSON decoding
// (float64 or json.Number) as well as decimal strings.
func (c Claims) int64Claim(key string) (int64, bool) {
	switch v := c.raw[key].(type) {
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}
