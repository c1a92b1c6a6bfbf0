// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers an unknown username and a wrong password
	// alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("user account is not active")

	// ErrInvalidClient covers unknown, inactive and mismatching clients.
	ErrInvalidClient = errors.New("invalid client")
	// ErrClientExpired matches ErrInvalidClient under errors.Is.
	ErrClientExpired = fmt.Errorf("%w: client credentials expired", ErrInvalidClient)

	ErrUnsupportedGrantType = errors.New("unsupported grant type")

	ErrValidation     = errors.New("validation failed")
	ErrForbidden      = errors.New("insufficient role")
	ErrClientNotFound = errors.New("api client not found")
)
