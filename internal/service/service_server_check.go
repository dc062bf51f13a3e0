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

type serverCheckService struct {
	logger *logger.Logger
}

// NewServerCheckService constructs a ServerCheckService.
func NewServerCheckService(log *logger.Logger) ServerCheckService {
	return &serverCheckService{logger: log}
}

// Reconcile implements ServerCheckService.
//
// Every original row was inserted at build time and its key removed during
// the client check only if the client had an identical row. A key that is
// still present therefore proves the row is gone from the client dataset.
//
// Removed rows are written in the order they first appear; repeated rows are
// reported once. set is not modified.
func (s *serverCheckService) Reconcile(ctx context.Context, rows RowReader, set *delta.Set, h hasher.Hasher, out RowWriter) (models.ServerCheckReport, error) {
	if err := CheckCompatible(set, h); err != nil {
		return models.ServerCheckReport{}, err
	}

	// keys already reported; bounded by the size of set
	reported := make(map[string]struct{})

	var report models.ServerCheckReport
	for {
		if err := ctx.Err(); err != nil {
			return models.ServerCheckReport{}, err
		}

		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.ServerCheckReport{}, fmt.Errorf("error reading dataset: %w", err)
		}
		if row.Header {
			continue
		}

		report.Rows++
		key := h.Key(row.Text)
		if !set.Contains(key) {
			continue
		}
		if _, ok := reported[string(key)]; ok {
			continue
		}
		reported[string(key)] = struct{}{}

		if err = out.Write(row); err != nil {
			return models.ServerCheckReport{}, err
		}
		report.Removed++
	}

	if len(reported) < set.Len() {
		logger.FromContextOr(ctx, s.logger).Warn().
			Int("unmatched_keys", set.Len()-len(reported)).
			Msg("structure holds keys not found in the original dataset")
	}

	return report, nil
}
