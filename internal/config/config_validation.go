// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-csv-delta/internal/dataset"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
)

// validate checks path presence and the hash selection. Whether paths exist
// is checked by the app right before the run.
func (cfg *BuildConfig) validate() error {
	if err := validateInputCSV(cfg.InputCSV); err != nil {
		return err
	}
	if err := validateStructurePath(cfg.OutputStructure, ErrInvalidOutputConfigs, "output structure"); err != nil {
		return err
	}
	return validateHash(cfg.Hash, false)
}

func (cfg *ClientCheckConfig) validate() error {
	if err := validateInputCSV(cfg.InputCSV); err != nil {
		return err
	}
	if err := validateStructurePath(cfg.InputStructure, ErrInvalidInputConfigs, "input structure"); err != nil {
		return err
	}
	if err := validateStructurePath(cfg.OutputStructure, ErrInvalidOutputConfigs, "output structure"); err != nil {
		return err
	}
	if err := validateOutputCSV(cfg.OutputCSV); err != nil {
		return err
	}
	if cfg.OutputCSV == cfg.OutputStructure {
		return fmt.Errorf("%w: output csv and output structure are the same path", ErrInvalidOutputConfigs)
	}
	return validateHash(cfg.Hash, true)
}

func (cfg *ServerCheckConfig) validate() error {
	if err := validateInputCSV(cfg.InputCSV); err != nil {
		return err
	}
	if err := validateStructurePath(cfg.InputStructure, ErrInvalidInputConfigs, "input structure"); err != nil {
		return err
	}
	if err := validateOutputCSV(cfg.OutputCSV); err != nil {
		return err
	}
	return validateHash(cfg.Hash, true)
}

func validateInputCSV(path string) error {
	if path == dataset.Stdout || path == dataset.Stderr {
		return fmt.Errorf("%w: cannot read input csv from %s", ErrInvalidInputConfigs, path)
	}
	return nil
}

func validateOutputCSV(path string) error {
	if path == dataset.Stdin || path == "-" {
		return fmt.Errorf("%w: cannot write output csv to %s", ErrInvalidOutputConfigs, path)
	}
	return nil
}

// validateStructurePath requires a real file path: structures are binary and
// travel between parties as files.
func validateStructurePath(path string, sentinel error, what string) error {
	if path == "" {
		return fmt.Errorf("%w: %s is required", sentinel, what)
	}
	if dataset.IsStdio(path) {
		return fmt.Errorf("%w: %s cannot be %s", sentinel, what, path)
	}
	return nil
}

func validateHash(h Hash, optional bool) error {
	if h.Func == "" && optional {
		return nil
	}
	if _, err := hasher.New(h.Func, h.Key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHashConfigs, err)
	}
	return nil
}
