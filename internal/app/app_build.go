// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-csv-delta/internal/config"
	"github.com/MKhiriev/go-csv-delta/internal/dataset"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/internal/service"
	"github.com/MKhiriev/go-csv-delta/internal/store"
	"github.com/MKhiriev/go-csv-delta/models"
)

// BuildApp runs csv-delta-build: it snapshots a dataset into a new structure.
type BuildApp struct {
	deps
	cfg    *config.BuildConfig
	hasher hasher.Hasher
}

var _ Runner = (*BuildApp)(nil)

// NewBuildApp wires a BuildApp. The hash function is resolved here so a bad
// configuration fails before Run.
func NewBuildApp(cfg *config.BuildConfig, services *service.Services, structures store.StructureStore, log *logger.Logger) (*BuildApp, error) {
	if cfg == nil {
		return nil, errNilDependency
	}

	d, err := newDeps(services, structures, log, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	h, err := hasher.New(cfg.Hash.Func, cfg.Hash.Key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgInvalidHash, err)
	}

	return &BuildApp{deps: d, cfg: cfg, hasher: h}, nil
}

// Run implements Runner.
func (a *BuildApp) Run(ctx context.Context) error {
	ctx, log := a.startRun(ctx, models.PhaseBuild)

	if err := checkPaths([]string{a.cfg.InputCSV}, []string{a.cfg.OutputStructure}); err != nil {
		return err
	}

	in, err := dataset.Open(a.cfg.InputCSV)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgOpenDatasetFailed, err)
	}
	defer in.Close()

	rows := dataset.NewReader(in, readerOptions(a.cfg.Dataset)...)
	set, report, err := a.services.BuildService.Build(ctx, rows, a.hasher, service.BuildOptions{
		StrictUnique: a.cfg.Dataset.StrictUnique,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", MsgBuildFailed, err)
	}

	if err = a.structures.Save(ctx, a.cfg.OutputStructure, set); err != nil {
		return fmt.Errorf("%s: %w", MsgSaveStructureFailed, err)
	}

	log.Info().
		Str("input_csv", a.cfg.InputCSV).
		Str("output_structure", a.cfg.OutputStructure).
		Str("hash", a.hasher.Name()).
		Any("report", report).
		Msg(MsgBuildDone)
	return nil
}
