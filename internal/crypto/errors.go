// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrHashingSecret is returned when bcrypt fails to hash the input.
	ErrHashingSecret = errors.New("error hashing secret")

	// ErrGeneratingCredentials is returned when the random source fails.
	ErrGeneratingCredentials = errors.New("error generating client credentials")
)
