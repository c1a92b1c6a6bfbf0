// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt cost used when the configuration does not set
// one.
const DefaultHashCost = 12

// bcryptHasher is the bcrypt implementation of [SecretHasher].
type bcryptHasher struct {
	// cost is fixed at construction; callers never choose it per call.
	cost int
}

// NewBcryptHasher constructs a [SecretHasher] with the given bcrypt cost.
// Zero selects [DefaultHashCost]; values outside bcrypt's accepted range are
// clamped to it.
func NewBcryptHasher(cost int) SecretHasher {
	switch {
	case cost == 0:
		cost = DefaultHashCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash implements [SecretHasher]. bcrypt embeds the algorithm version, cost
// and a fresh random salt in its output.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingSecret, err)
	}

	return string(hash), nil
}

// Verify implements [SecretHasher].
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(plaintext)) == nil
}

// prehash reduces a secret of any length to 44 bytes before it reaches
// bcrypt, which silently ignores everything past byte 72.
func prehash(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
