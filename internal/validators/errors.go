// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrUnsupportedGrantType = errors.New("unsupported grant type")
	ErrEmptyClientID        = errors.New("client id is required")
	ErrEmptyClientSecret    = errors.New("client secret is required")
	ErrEmptyName            = errors.New("client name is required")
	ErrNameTooLong          = errors.New("client name is too long")
	ErrExpiryInPast         = errors.New("client expiry lies in the past")
	ErrMissingTenant        = errors.New("missing customer ID")
	ErrMissingUserID        = errors.New("missing user ID")
)
