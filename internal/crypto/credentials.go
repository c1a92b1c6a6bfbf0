// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	// ClientIDPrefix marks public client identifiers.
	ClientIDPrefix = "client_"

	// ClientSecretPrefix marks plaintext client secrets so that leaked values
	// are easy to recognise in logs and scanners.
	ClientSecretPrefix = "secret_"

	clientIDLength     = 24
	clientSecretLength = 32 // bytes of entropy
)

type credentialGenerator struct {
	random io.Reader
}

// NewCredentialGenerator returns a [CredentialGenerator] backed by the OS
// CSPRNG.
func NewCredentialGenerator() CredentialGenerator {
	return &credentialGenerator{random: rand.Reader}
}

// GenerateClientID returns "client_" followed by 24 hex characters of a random
// (version 4) UUID. Uniqueness is enforced by the store's unique constraint;
// a collision surfaces as an error and is not retried.
func (g *credentialGenerator) GenerateClientID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.random)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingCredentials, err)
	}

	hex := strings.ReplaceAll(id.String(), "-", "")
	return ClientIDPrefix + hex[:clientIDLength], nil
}

// GenerateClientSecret returns "secret_" followed by the unpadded base64url
// encoding of 32 random bytes.
func (g *credentialGenerator) GenerateClientSecret() (string, error) {
	buf := make([]byte, clientSecretLength)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingCredentials, err)
	}

	return ClientSecretPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}
