// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/claims"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks signature, algorithm, issuer and expiry of bearer tokens
// issued with the same [Config]. Only a successfully verified token is ever
// handed to the claim extractor.
type Verifier struct {
	cfg Config
	now func() time.Time
}

// NewVerifier validates cfg and returns a [Verifier].
func NewVerifier(cfg Config) (*Verifier, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Verifier{cfg: cfg, now: time.Now}, nil
}

// Verify parses tokenString and returns its claims.
//
// Errors are normalised to [ErrTokenExpired] or [ErrTokenInvalid], each
// wrapping the underlying jwt error.
func (v *Verifier) Verify(tokenString string) (claims.Claims, error) {
	raw := jwt.MapClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.cfg.signingMethod().Alg()}),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithJSONNumber(),
		jwt.WithTimeFunc(v.now),
	)

	_, err := parser.ParseWithClaims(tokenString, raw, func(*jwt.Token) (any, error) {
		return v.cfg.verificationKey(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return claims.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims.New(raw), nil
}
