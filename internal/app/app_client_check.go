// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-csv-delta/internal/config"
	"github.com/MKhiriev/go-csv-delta/internal/dataset"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/internal/service"
	"github.com/MKhiriev/go-csv-delta/internal/store"
	"github.com/MKhiriev/go-csv-delta/models"
)

// ClientCheckApp runs csv-delta-check-client: it prunes the client dataset
// and writes the shrunk structure.
type ClientCheckApp struct {
	deps
	cfg *config.ClientCheckConfig
}

var _ Runner = (*ClientCheckApp)(nil)

// NewClientCheckApp wires a ClientCheckApp.
func NewClientCheckApp(cfg *config.ClientCheckConfig, services *service.Services, structures store.StructureStore, log *logger.Logger) (*ClientCheckApp, error) {
	if cfg == nil {
		return nil, errNilDependency
	}

	d, err := newDeps(services, structures, log, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &ClientCheckApp{deps: d, cfg: cfg}, nil
}

// Run implements Runner.
//
// The pruned dataset is streamed to a pending output, the structure is saved,
// and only then is the dataset published. If publishing fails the saved
// structure is removed again.
func (a *ClientCheckApp) Run(ctx context.Context) error {
	ctx, log := a.startRun(ctx, models.PhaseClientCheck)

	err := checkPaths(
		[]string{a.cfg.InputCSV, a.cfg.InputStructure},
		[]string{a.cfg.OutputCSV, a.cfg.OutputStructure},
	)
	if err != nil {
		return err
	}

	set, h, err := a.loadStructure(ctx, a.cfg.InputStructure, a.cfg.Hash)
	if err != nil {
		return err
	}

	in, err := dataset.Open(a.cfg.InputCSV)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgOpenDatasetFailed, err)
	}
	defer in.Close()

	out, err := store.CreateOutput(a.cfg.OutputCSV)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgCreateOutputFailed, err)
	}
	defer out.Abort()

	w := dataset.NewWriter(out)
	report, err := a.services.ClientCheckService.Prune(ctx, dataset.NewReader(in, readerOptions(a.cfg.Dataset)...), set, h, w)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgClientCheckFailed, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%s: %w", MsgClientCheckFailed, err)
	}

	if err = a.structures.Save(ctx, a.cfg.OutputStructure, set); err != nil {
		return fmt.Errorf("%s: %w", MsgSaveStructureFailed, err)
	}

	if err = out.Commit(); err != nil {
		if rbErr := store.Discard(a.cfg.OutputStructure); rbErr != nil {
			log.Error().Err(rbErr).Str("path", a.cfg.OutputStructure).Msg(MsgRollbackFailed)
		}
		return fmt.Errorf("%s: %w", MsgCommitOutputFailed, err)
	}

	log.Info().
		Str("input_csv", a.cfg.InputCSV).
		Str("output_csv", out.Path()).
		Str("output_structure", a.cfg.OutputStructure).
		Str("hash", h.Name()).
		Any("report", report).
		Msg(MsgClientCheckDone)
	return nil
}
