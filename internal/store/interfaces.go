// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StructureStore persists delta structures between protocol phases.
type StructureStore interface {
	// Save writes set to path exactly once. It fails with [ErrOutputExists]
	// if path already exists, and leaves no file behind on failure.
	Save(ctx context.Context, path string, set *delta.Set) error
	// Load reads the structure stored at path.
	Load(ctx context.Context, path string) (*delta.Set, error)
}
