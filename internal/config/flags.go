// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token HMAC signing key
//	-token-private-key RSA private key path (enables RS256)
//	-token-issuer token issuer name
//	-token-duration-web web token duration (e.g., "24h")
//	-token-duration-app app token duration (e.g., "720h")
//	-token-duration-client client token duration (e.g., "1h")
//	-hash-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level (e.g., "debug", "info")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenPrivateKeyPath string
	var tokenIssuer string
	var tokenDurationWeb, tokenDurationApp, tokenDurationClient time.Duration
	var hashCost int
	var requestTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("tenant-auth", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token HMAC signing key")
	fs.StringVar(&tokenPrivateKeyPath, "token-private-key", "", "Token RSA private key path")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDurationWeb, "token-duration-web", 0, "Web token duration (e.g., 24h)")
	fs.DurationVar(&tokenDurationApp, "token-duration-app", 0, "App token duration (e.g., 720h)")
	fs.DurationVar(&tokenDurationClient, "token-duration-client", 0, "Client token duration (e.g., 1h)")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:        tokenSignKey,
			TokenPrivateKeyPath: tokenPrivateKeyPath,
			TokenIssuer:         tokenIssuer,
			TokenDurationWeb:    tokenDurationWeb,
			TokenDurationApp:    tokenDurationApp,
			TokenDurationClient: tokenDurationClient,
			HashCost:            hashCost,
			LogLevel:            logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
