// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid token configuration")

	// ErrSigningToken wraps failures of the underlying signer.
	ErrSigningToken = errors.New("error signing token")

	// ErrTokenExpired is returned by [Verifier.Verify] for a well-formed,
	// correctly signed token whose "exp" lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid covers every other verification failure: bad signature,
	// unexpected algorithm, wrong issuer, malformed input.
	ErrTokenInvalid = errors.New("token is invalid")
)
