// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/tenant-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// commonClaims are shared by user and client tokens. Tenant id is written
// under both "tenantId" and the legacy "customerId" name.
type commonClaims struct {
	jwt.RegisteredClaims

	UPN        string               `json:"upn"`
	TenantID   int64                `json:"tenantId"`
	CustomerID int64                `json:"customerId"`
	Groups     []string             `json:"groups"`
	TokenType  models.PrincipalKind `json:"tokenType"`
}

type userClaims struct {
	commonClaims

	UserID     int64  `json:"userId"`
	Role       string `json:"role"`
	DeviceType string `json:"deviceType"`
}

// clientClaims deliberately has no userId and no role: the only group is
// CLIENT.
type clientClaims struct {
	commonClaims

	ClientID string `json:"clientId"`
	Scopes   string `json:"scopes"`
}

// Issuer builds and signs bearer tokens. It has no side effects beyond
// signing and is safe for concurrent use.
type Issuer struct {
	cfg Config
	now func() time.Time
}

// NewIssuer validates cfg and returns an [Issuer].
func NewIssuer(cfg Config) (*Issuer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Issuer{cfg: cfg, now: time.Now}, nil
}

// NormalizeDevice maps a caller-supplied device hint onto a known category.
// Only "app" (any case) is recognised; everything else, including the empty
// string, is the web category.
func NormalizeDevice(deviceCategory string) string {
	if strings.EqualFold(strings.TrimSpace(deviceCategory), models.DeviceApp) {
		return models.DeviceApp
	}
	return models.DeviceWeb
}

// UserTokenDuration returns the lifetime of user tokens for deviceCategory.
func (i *Issuer) UserTokenDuration(deviceCategory string) time.Duration {
	if NormalizeDevice(deviceCategory) == models.DeviceApp {
		return i.cfg.AppDuration
	}
	return i.cfg.WebDuration
}

// ClientTokenDuration returns the fixed lifetime of client tokens.
func (i *Issuer) ClientTokenDuration() time.Duration {
	return i.cfg.ClientDuration
}

// IssueUserToken signs a token for a human user. The lifetime is chosen by
// deviceCategory (see [NormalizeDevice]).
func (i *Issuer) IssueUserToken(userID int64, username string, tenantID int64, role models.Role, deviceCategory string) (models.IssuedToken, error) {
	device := NormalizeDevice(deviceCategory)
	duration := i.UserTokenDuration(device)

	claims := &userClaims{
		commonClaims: i.commonClaims(username, tenantID, []string{role.String()}, models.PrincipalUser, duration),
		UserID:       userID,
		Role:         role.String(),
		DeviceType:   device,
	}

	return i.sign(claims, duration)
}

// IssueClientToken signs a token for a machine client. scopes is embedded
// verbatim; an empty string is kept as an empty claim.
func (i *Issuer) IssueClientToken(clientID string, tenantID int64, scopes string) (models.IssuedToken, error) {
	duration := i.cfg.ClientDuration

	claims := &clientClaims{
		commonClaims: i.commonClaims(clientID, tenantID, []string{models.RoleClient.String()}, models.PrincipalClient, duration),
		ClientID:     clientID,
		Scopes:       scopes,
	}

	return i.sign(claims, duration)
}

func (i *Issuer) commonClaims(subject string, tenantID int64, groups []string, kind models.PrincipalKind, duration time.Duration) commonClaims {
	now := i.now()

	return commonClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			ID:        uuid.NewString(),
		},
		UPN:        subject,
		TenantID:   tenantID,
		CustomerID: tenantID,
		Groups:     groups,
		TokenType:  kind,
	}
}

func (i *Issuer) sign(claims jwt.Claims, duration time.Duration) (models.IssuedToken, error) {
	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrSigningToken, err)
	}

	signed, err := jwt.NewWithClaims(i.cfg.signingMethod(), claims).SignedString(i.cfg.signingKey())
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrSigningToken, err)
	}

	return models.IssuedToken{
		Token:     signed,
		ExpiresIn: int64(duration / time.Second),
		ExpiresAt: expiresAt.Time,
	}, nil
}
