// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-csv-delta/internal/config"
	"github.com/MKhiriev/go-csv-delta/internal/dataset"
	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/internal/service"
	"github.com/MKhiriev/go-csv-delta/internal/store"
	"github.com/MKhiriev/go-csv-delta/models"
)

// Runner is a single protocol phase.
type Runner interface {
	// Run executes the phase once. It either publishes every output or
	// leaves none behind.
	Run(ctx context.Context) error
}

var errNilDependency = errors.New("nil dependency")

// deps holds what every phase runner needs.
type deps struct {
	services   *service.Services
	structures store.StructureStore
	logger     *logger.Logger
}

func newDeps(services *service.Services, structures store.StructureStore, log *logger.Logger, level string) (deps, error) {
	if services == nil || structures == nil || log == nil {
		return deps{}, errNilDependency
	}

	leveled, err := log.WithLevel(level)
	if err != nil {
		return deps{}, err
	}

	return deps{services: services, structures: structures, logger: leveled}, nil
}

// startRun tags the run with a fresh id and attaches the logger to ctx.
func (d deps) startRun(ctx context.Context, phase models.Phase) (context.Context, *logger.Logger) {
	log := d.logger.WithRunID(newRunID())
	log.Debug().Str("phase", phase.String()).Msg("run started")
	return log.WithContext(ctx), log
}

// newRunID returns a time-ordered UUIDv7 so run ids sort by start time,
// falling back to a random UUID.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// checkPaths validates every input and output path before any work starts.
func checkPaths(inputs, outputs []string) error {
	var errs []error
	for _, p := range inputs {
		if err := store.CheckInput(p); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range outputs {
		if err := store.CheckOutput(p); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", MsgInvalidPaths, err)
	}
	return nil
}

// resolveHasher returns the configured hasher, or the one set was built with
// when no hash function is configured.
func resolveHasher(cfg config.Hash, set *delta.Set) (hasher.Hasher, error) {
	name := cfg.Func
	if name == "" {
		name = set.HashName()
	}

	h, err := hasher.New(name, cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgInvalidHash, err)
	}
	if err = service.CheckCompatible(set, h); err != nil {
		return nil, fmt.Errorf("%s: %w", MsgInvalidHash, err)
	}
	return h, nil
}

func readerOptions(cfg config.Dataset) []dataset.Option {
	return []dataset.Option{dataset.WithHeaderSentinel(cfg.HeaderSentinel)}
}

// loadStructure reads the input structure and resolves its hasher.
func (d deps) loadStructure(ctx context.Context, path string, hashCfg config.Hash) (*delta.Set, hasher.Hasher, error) {
	set, err := d.structures.Load(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", MsgLoadStructureFailed, path, err)
	}

	h, err := resolveHasher(hashCfg, set)
	if err != nil {
		return nil, nil, err
	}
	return set, h, nil
}
