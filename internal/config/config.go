// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the gate server. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Validation holds the limits applied while extracting request input.
	Validation Validation `envPrefix:"VALIDATION_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the time spent reading a request and writing
	// its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Validation holds the limits used when request input is extracted for
// validation.
type Validation struct {
	// MaxBodyBytes is the largest request body accepted, in bytes.
	// Env: VALIDATION_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// MaxMultipartMemory is how much of a multipart body is kept in memory;
	// the rest of the uploaded files spill to temporary files.
	// Env: VALIDATION_MAX_MULTIPART_MEMORY
	MaxMultipartMemory int64 `env:"MAX_MULTIPART_MEMORY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the values used for every setting no source provides.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Validation: Validation{
			MaxBodyBytes:       10 << 20,
			MaxMultipartMemory: 32 << 20,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source take their value from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
