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

// ServerCheckApp runs csv-delta-check-server: it reports the rows of the
// original dataset that the client no longer has.
type ServerCheckApp struct {
	deps
	cfg *config.ServerCheckConfig
}

var _ Runner = (*ServerCheckApp)(nil)

// NewServerCheckApp wires a ServerCheckApp.
func NewServerCheckApp(cfg *config.ServerCheckConfig, services *service.Services, structures store.StructureStore, log *logger.Logger) (*ServerCheckApp, error) {
	if cfg == nil {
		return nil, errNilDependency
	}

	d, err := newDeps(services, structures, log, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &ServerCheckApp{deps: d, cfg: cfg}, nil
}

// Run implements Runner.
func (a *ServerCheckApp) Run(ctx context.Context) error {
	ctx, log := a.startRun(ctx, models.PhaseServerCheck)

	err := checkPaths(
		[]string{a.cfg.InputCSV, a.cfg.InputStructure},
		[]string{a.cfg.OutputCSV},
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
	report, err := a.services.ServerCheckService.Reconcile(ctx, dataset.NewReader(in, readerOptions(a.cfg.Dataset)...), set, h, w)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgServerCheckFailed, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%s: %w", MsgServerCheckFailed, err)
	}

	if err = out.Commit(); err != nil {
		return fmt.Errorf("%s: %w", MsgCommitOutputFailed, err)
	}

	log.Info().
		Str("input_csv", a.cfg.InputCSV).
		Str("output_csv", out.Path()).
		Str("hash", h.Name()).
		Any("report", report).
		Msg(MsgServerCheckDone)
	return nil
}
