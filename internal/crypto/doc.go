// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the secret-handling primitives of the service: bcrypt
// hashing and verification of passwords and client secrets, and generation of
// new client identifiers and secrets.
package crypto
