// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/models"
)

// BuildOptions tune a build run.
type BuildOptions struct {
	// StrictUnique rejects datasets containing duplicate rows instead of
	// collapsing them into one key.
	StrictUnique bool
}

type buildService struct {
	logger *logger.Logger
}

// NewBuildService constructs a BuildService.
func NewBuildService(log *logger.Logger) BuildService {
	return &buildService{logger: log}
}

// Build implements BuildService.
//
// The set is a set, not a multiset: a row repeated in the dataset is stored
// once, and only one occurrence of it can later be matched by a client.
func (s *buildService) Build(ctx context.Context, rows RowReader, h hasher.Hasher, opts BuildOptions) (*delta.Set, models.BuildReport, error) {
	set := delta.NewSet(h.Name(), h.Fingerprint())
	var report models.BuildReport

	for {
		if err := ctx.Err(); err != nil {
			return nil, models.BuildReport{}, err
		}

		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, models.BuildReport{}, fmt.Errorf("error reading dataset: %w", err)
		}
		if row.Header {
			continue
		}

		report.Rows++
		if set.Insert(h.Key(row.Text)) {
			report.Inserted++
			continue
		}

		if opts.StrictUnique {
			return nil, models.BuildReport{}, fmt.Errorf("%w: line %d", ErrDuplicateRow, row.Line)
		}
		report.Duplicates++
		logger.FromContextOr(ctx, s.logger).Debug().Int("line", row.Line).Msg("duplicate row collapsed")
	}

	return set, report, nil
}
