// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/models"
)

// RowReader yields dataset rows one at a time and returns io.EOF after the
// last one. [dataset.Reader] implements it.
type RowReader interface {
	Next() (models.Row, error)
}

// RowWriter receives output rows. [dataset.Writer] implements it.
type RowWriter interface {
	Write(row models.Row) error
}

// BuildService snapshots a server dataset into a delta structure.
type BuildService interface {
	// Build inserts the canonical key of every data row of rows into a new
	// set. The header is never inserted.
	Build(ctx context.Context, rows RowReader, h hasher.Hasher, opts BuildOptions) (*delta.Set, models.BuildReport, error)
}

// ClientCheckService prunes a client dataset against a server structure.
type ClientCheckService interface {
	// Prune writes the header and every row unknown to set to out, and
	// removes every known row's key from set.
	Prune(ctx context.Context, rows RowReader, set *delta.Set, h hasher.Hasher, out RowWriter) (models.ClientCheckReport, error)
}

// ServerCheckService reports the rows a client no longer has.
type ServerCheckService interface {
	// Reconcile writes every row of the original dataset whose key is still
	// in the client-pruned set to out, once per distinct row.
	Reconcile(ctx context.Context, rows RowReader, set *delta.Set, h hasher.Hasher, out RowWriter) (models.ServerCheckReport, error)
}
