// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	app := cfg.App
	if app.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	}
	if app.TokenSignKey == "" && app.TokenPrivateKeyPath == "" {
		return fmt.Errorf("%w: either token sign key or private key path is required", ErrInvalidAppConfigs)
	}
	if app.TokenDurationWeb <= 0 || app.TokenDurationApp <= 0 || app.TokenDurationClient <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if err := validateHashCost(app.HashCost); err != nil {
		return err
	}

	if app.LogLevel != "" {
		if _, err := zerolog.ParseLevel(app.LogLevel); err != nil {
			return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, app.LogLevel)
		}
	}

	return nil
}

func validateHashCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: hash cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
