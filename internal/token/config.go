// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Config is the signing configuration of the issuer and verifier. It is built
// once at process start and passed in explicitly; nothing here is global.
//
// Exactly one of HMACKey and PrivateKey is used: PrivateKey selects RS256,
// otherwise HMACKey selects HS256.
type Config struct {
	// Issuer is the "iss" claim of issued tokens and the only issuer the
	// verifier accepts.
	Issuer string

	HMACKey    []byte
	PrivateKey *rsa.PrivateKey

	WebDuration    time.Duration
	AppDuration    time.Duration
	ClientDuration time.Duration
}

// ConfigFromApp builds a [Config] from application settings, loading the RSA
// private key from disk when a key path is configured.
func ConfigFromApp(cfg config.App) (Config, error) {
	tokenCfg := Config{
		Issuer:         cfg.TokenIssuer,
		HMACKey:        []byte(cfg.TokenSignKey),
		WebDuration:    cfg.TokenDurationWeb,
		AppDuration:    cfg.TokenDurationApp,
		ClientDuration: cfg.TokenDurationClient,
	}

	if cfg.TokenPrivateKeyPath != "" {
		pemBytes, err := os.ReadFile(cfg.TokenPrivateKeyPath)
		if err != nil {
			return Config{}, fmt.Errorf("%w: reading private key: %w", ErrInvalidConfig, err)
		}

		key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
		if err != nil {
			return Config{}, fmt.Errorf("%w: parsing private key: %w", ErrInvalidConfig, err)
		}
		tokenCfg.PrivateKey = key
		tokenCfg.HMACKey = nil
	}

	return tokenCfg, tokenCfg.validate()
}

func (c Config) validate() error {
	if c.Issuer == "" {
		return fmt.Errorf("%w: empty issuer", ErrInvalidConfig)
	}
	if c.PrivateKey == nil && len(c.HMACKey) == 0 {
		return fmt.Errorf("%w: no signing key", ErrInvalidConfig)
	}
	if c.WebDuration <= 0 || c.AppDuration <= 0 || c.ClientDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c Config) signingMethod() jwt.SigningMethod {
	if c.PrivateKey != nil {
		return jwt.SigningMethodRS256
	}
	return jwt.SigningMethodHS256
}

func (c Config) signingKey() any {
	if c.PrivateKey != nil {
		return c.PrivateKey
	}
	return c.HMACKey
}

func (c Config) verificationKey() any {
	if c.PrivateKey != nil {
		return &c.PrivateKey.PublicKey
	}
	return c.HMACKey
}
