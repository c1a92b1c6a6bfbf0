// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSON(t, `{
		"auth": {
			"token_sign_key": "json-key",
			"token_private_key_path": "/keys/rsa.pem",
			"token_issuer": "json-issuer",
			"token_duration_web": "12h",
			"token_duration_app": "240h",
			"token_duration_client": "20m",
			"hash_cost": 10,
			"version": "9.9.9"
		},
		"server": {
			"http_address": "0.0.0.0:9000",
			"request_timeout": "15s"
		},
		"storage": {
			"db": {"dsn": "postgres://json/db"}
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "/keys/rsa.pem", cfg.App.TokenPrivateKeyPath)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDurationWeb)
	assert.Equal(t, 240*time.Hour, cfg.App.TokenDurationApp)
	assert.Equal(t, 20*time.Minute, cfg.App.TokenDurationClient)
	assert.Equal(t, 10, cfg.App.HashCost)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeRawJSON(t, `{"auth": `)

	cfg, err := parseJSON(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeRawJSON(t, `{"auth": {"token_duration_web": "forever"}}`)

	cfg, err := parseJSON(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeRawJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeRawJSON(t, `{}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
