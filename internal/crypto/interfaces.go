// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecretHasher performs one-way adaptive hashing of user passwords and client
// secrets, and verifies plaintext candidates against stored hashes.
//
// Implementations hold no per-call state and are safe for concurrent use.
type SecretHasher interface {
	// Hash returns a self-describing, salted hash of plaintext. Two calls with
	// the same input produce different hashes, so hashes are never compared
	// for equality.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. It compares in constant
	// time and fails closed: a malformed hash yields false.
	Verify(plaintext, hash string) bool
}

// CredentialGenerator creates the opaque public identifier and the plaintext
// secret of a new API client.
type CredentialGenerator interface {
	GenerateClientID() (string, error)
	GenerateClientSecret() (string, error)
}
