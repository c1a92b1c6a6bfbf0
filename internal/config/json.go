// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenPrivateKeyPath string   `json:"token_private_key_path"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDurationWeb    Duration `json:"token_duration_web"`
		TokenDurationApp    Duration `json:"token_duration_app"`
		TokenDurationClient Duration `json:"token_duration_client"`
		HashCost            int      `json:"hash_cost"`
		LogLevel            string   `json:"log_level"`
		Version             string   `json:"version"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.Auth.TokenSignKey,
			TokenPrivateKeyPath: jsonCfg.Auth.TokenPrivateKeyPath,
			TokenIssuer:         jsonCfg.Auth.TokenIssuer,
			TokenDurationWeb:    time.Duration(jsonCfg.Auth.TokenDurationWeb),
			TokenDurationApp:    time.Duration(jsonCfg.Auth.TokenDurationApp),
			TokenDurationClient: time.Duration(jsonCfg.Auth.TokenDurationClient),
			HashCost:            jsonCfg.Auth.HashCost,
			LogLevel:            jsonCfg.Auth.LogLevel,
			Version:             jsonCfg.Auth.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
