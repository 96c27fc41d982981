// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config reads service configuration from environment variables.
package config

import (
	"errors"
	"os"
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// DSN is the Postgres connection string. Required.
	DSN string
	// LogLevel is "debug" for verbose output, anything else for warn.
	LogLevel string
	// LogFormat is "json" for machine-readable logs, anything else for
	// the console encoder.
	LogFormat string
}

const defaultAddr = ":8080"

// Load reads the environment. It fails when RESOURCED_PG_DSN is unset:
// the service has nothing to do without its table.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:      readEnv("RESOURCED_ADDR", defaultAddr),
		DSN:       os.Getenv("RESOURCED_PG_DSN"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}
	if cfg.DSN == "" {
		return nil, errors.New("RESOURCED_PG_DSN environment variable is not set")
	}
	return cfg, nil
}

func readEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
