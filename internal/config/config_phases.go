// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-csv-delta/internal/dataset"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/models"
)

// BuildConfig is the csv-delta-build view of [StructuredConfig].
type BuildConfig struct {
	InputCSV        string
	OutputStructure string
	Hash            Hash
	Dataset         Dataset
	LogLevel        string
}

// ClientCheckConfig is the csv-delta-check-client view of [StructuredConfig].
//
// An empty Hash.Func means "use the hash the structure was built with".
type ClientCheckConfig struct {
	InputCSV        string
	InputStructure  string
	OutputCSV       string
	OutputStructure string
	Hash            Hash
	Dataset         Dataset
	LogLevel        string
}

// ServerCheckConfig is the csv-delta-check-server view of [StructuredConfig].
//
// An empty Hash.Func means "use the hash the structure was built with".
type ServerCheckConfig struct {
	InputCSV       string
	InputStructure string
	OutputCSV      string
	Hash           Hash
	Dataset        Dataset
	LogLevel       string
}

// GetBuildConfig loads the configuration of the build tool from the process
// environment and command line.
func GetBuildConfig() (*BuildConfig, error) {
	return loadBuildConfig(os.Args[1:])
}

// GetClientCheckConfig loads the configuration of the client check tool.
func GetClientCheckConfig() (*ClientCheckConfig, error) {
	return loadClientCheckConfig(os.Args[1:])
}

// GetServerCheckConfig loads the configuration of the server check tool.
func GetServerCheckConfig() (*ServerCheckConfig, error) {
	return loadServerCheckConfig(os.Args[1:])
}

func loadBuildConfig(args []string) (*BuildConfig, error) {
	cfg, err := GetStructuredConfig(models.PhaseBuild, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	buildCfg := &BuildConfig{
		InputCSV:        withDefault(cfg.Input.CSV, dataset.Stdin),
		OutputStructure: cfg.Output.Structure,
		Hash: Hash{
			Func: withDefault(cfg.Hash.Func, hasher.Default),
			Key:  cfg.Hash.Key,
		},
		Dataset:  cfg.Dataset,
		LogLevel: cfg.Log.Level,
	}

	return buildCfg, buildCfg.validate()
}

func loadClientCheckConfig(args []string) (*ClientCheckConfig, error) {
	cfg, err := GetStructuredConfig(models.PhaseClientCheck, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientCheckConfig{
		InputCSV:        withDefault(cfg.Input.CSV, dataset.Stdin),
		InputStructure:  cfg.Input.Structure,
		OutputCSV:       withDefault(cfg.Output.CSV, dataset.Stdout),
		OutputStructure: cfg.Output.Structure,
		Hash:            cfg.Hash,
		Dataset:         Dataset{HeaderSentinel: cfg.Dataset.HeaderSentinel},
		LogLevel:        cfg.Log.Level,
	}

	return clientCfg, clientCfg.validate()
}

func loadServerCheckConfig(args []string) (*ServerCheckConfig, error) {
	cfg, err := GetStructuredConfig(models.PhaseServerCheck, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerCheckConfig{
		InputCSV:       withDefault(cfg.Input.CSV, dataset.Stdin),
		InputStructure: cfg.Input.Structure,
		OutputCSV:      withDefault(cfg.Output.CSV, dataset.Stdout),
		Hash:           cfg.Hash,
		Dataset:        Dataset{HeaderSentinel: cfg.Dataset.HeaderSentinel},
		LogLevel:       cfg.Log.Level,
	}

	return serverCfg, serverCfg.validate()
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
