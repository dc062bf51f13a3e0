// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
)

// structureStores routes every call to the backend matching the path:
// SQLite files for .db/.sqlite/.sqlite3 names, blob files otherwise.
type structureStores struct {
	file   StructureStore
	sqlite StructureStore
}

// NewStructureStore returns a [StructureStore] that picks the blob or SQLite
// backend by file name.
func NewStructureStore(log *logger.Logger) StructureStore {
	log.Debug().Msg("creating structure stores...")

	return &structureStores{
		file:   NewFileStructureStore(log),
		sqlite: NewSQLiteStructureStore(log),
	}
}

func (s *structureStores) backend(path string) StructureStore {
	if IsSQLitePath(path) {
		return s.sqlite
	}
	return s.file
}

// Save implements [StructureStore].
func (s *structureStores) Save(ctx context.Context, path string, set *delta.Set) error {
	return s.backend(path).Save(ctx, path, set)
}

// Load implements [StructureStore].
func (s *structureStores) Load(ctx context.Context, path string) (*delta.Set, error) {
	return s.backend(path).Load(ctx, path)
}
