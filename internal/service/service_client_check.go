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

type clientCheckService struct {
	logger *logger.Logger
}

// NewClientCheckService constructs a ClientCheckService.
func NewClientCheckService(log *logger.Logger) ClientCheckService {
	return &clientCheckService{logger: log}
}

// Prune implements ClientCheckService.
//
// Rows are classified one at a time:
//
//   - header: written to out, never looked up;
//   - key in set: unchanged since the server snapshot, so the key is removed
//     and the row dropped;
//   - key not in set: new or modified, so the row is written and the set is
//     left alone (the set never grows after build).
//
// Afterwards set holds exactly the keys of server rows no client row matched.
func (s *clientCheckService) Prune(ctx context.Context, rows RowReader, set *delta.Set, h hasher.Hasher, out RowWriter) (models.ClientCheckReport, error) {
	if err := CheckCompatible(set, h); err != nil {
		return models.ClientCheckReport{}, err
	}

	var report models.ClientCheckReport
	for {
		if err := ctx.Err(); err != nil {
			return models.ClientCheckReport{}, err
		}

		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.ClientCheckReport{}, fmt.Errorf("error reading dataset: %w", err)
		}

		if row.Header {
			if err = out.Write(row); err != nil {
				return models.ClientCheckReport{}, err
			}
			continue
		}

		report.Rows++
		key := h.Key(row.Text)
		if set.Contains(key) {
			if err = set.Remove(key); err != nil {
				return models.ClientCheckReport{}, fmt.Errorf("line %d: %w", row.Line, err)
			}
			report.Unchanged++
			continue
		}

		if err = out.Write(row); err != nil {
			return models.ClientCheckReport{}, err
		}
		report.Changed++
	}

	report.Remaining = set.Len()
	logger.FromContextOr(ctx, s.logger).Debug().
		Int("unchanged", report.Unchanged).
		Int("changed", report.Changed).
		Int("remaining", report.Remaining).
		Msg("client dataset pruned")

	return report, nil
}
