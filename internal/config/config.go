// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-csv-delta/models"

// StructuredConfig is the top-level configuration container shared by the
// csv-delta tools. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key used in the JSON configuration file.
type StructuredConfig struct {
	// Input holds the paths the phase reads from.
	Input Input `envPrefix:"INPUT_" json:"input"`

	// Output holds the paths the phase writes to. Every output is created
	// once; an existing path is refused.
	Output Output `envPrefix:"OUTPUT_" json:"output"`

	// Hash selects the canonical-key function.
	Hash Hash `envPrefix:"HASH_" json:"hash"`

	// Dataset tunes how rows are read.
	Dataset Dataset `envPrefix:"DATASET_" json:"dataset"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Input holds input paths. "stdin" (or "-") reads the standard input.
type Input struct {
	// CSV is the dataset to stream.
	// Env: INPUT_CSV
	CSV string `env:"CSV" json:"csv"`

	// Structure is a persisted delta structure.
	// Env: INPUT_STRUCTURE
	Structure string `env:"STRUCTURE" json:"structure"`
}

// Output holds output paths. "stdout" and "stderr" are accepted for CSV
// outputs only.
type Output struct {
	// Env: OUTPUT_CSV
	CSV string `env:"CSV" json:"csv"`

	// Env: OUTPUT_STRUCTURE
	Structure string `env:"STRUCTURE" json:"structure"`
}

// Hash selects the hash function used to canonicalize rows.
type Hash struct {
	// Func is the hasher identifier (e.g. "sha512_str", "blake3_256").
	// Env: HASH_FUNC
	Func string `env:"FUNC" json:"func"`

	// Key is the secret for keyed hashers such as "hmac_sha256".
	// Env: HASH_KEY
	Key string `env:"KEY" json:"key"`
}

// Dataset holds row-reading options.
type Dataset struct {
	// HeaderSentinel, when set, marks every row containing it as a header
	// instead of treating the first row as the header.
	// Env: DATASET_HEADER_SENTINEL
	HeaderSentinel string `env:"HEADER_SENTINEL" json:"header_sentinel"`

	// StrictUnique makes the build fail on duplicate rows.
	// Env: DATASET_STRICT_UNIQUE
	StrictUnique bool `env:"STRICT_UNIQUE" json:"strict_unique"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`
}

// GetStructuredConfig loads and merges the configuration for phase from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(phase models.Phase, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(phase, args).
		withJSON().
		build()
}
