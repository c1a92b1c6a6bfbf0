// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command hashgen prints the bcrypt hash of a password, for seeding users.
// The cost factor comes from APP_HASH_COST like it does for the server.
//
// Usage:
//
//	hashgen <password>
//	echo -n <password> | hashgen
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/tenant-auth/internal/config"
	"github.com/MKhiriev/tenant-auth/internal/crypto"
	"github.com/MKhiriev/tenant-auth/internal/logger"
)

var errEmptyPassword = errors.New("password is empty")

func main() {
	log := logger.NewLoggerWithWriter("hashgen", os.Stderr)

	cost, err := config.GetHashCost()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	hash, err := run(os.Args[1:], os.Stdin, crypto.NewBcryptHasher(cost))
	if err != nil {
		log.Fatal().Err(err).Msg("error generating hash")
	}

	fmt.Println(hash)
}

// run hashes the password given as the only positional argument, or read from
// stdin when there is none.
func run(args []string, stdin io.Reader, hasher crypto.SecretHasher) (string, error) {
	fs := flag.NewFlagSet("hashgen", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	password := fs.Arg(0)
	if fs.NArg() == 0 {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		return "", errEmptyPassword
	}

	return hasher.Hash(password)
}
