// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
)

// fileStructureStore keeps a delta structure as a single binary blob in the
// format implemented by [delta.Set.WriteTo].
type fileStructureStore struct {
	logger *logger.Logger
}

// NewFileStructureStore constructs a [StructureStore] backed by blob files.
func NewFileStructureStore(log *logger.Logger) StructureStore {
	return &fileStructureStore{logger: log}
}

// Save implements [StructureStore].
func (s *fileStructureStore) Save(ctx context.Context, path string, set *delta.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := CreateOutput(path)
	if err != nil {
		return err
	}
	defer out.Abort()

	n, err := set.WriteTo(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStructureNotSaved, err)
	}
	if err = out.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrStructureNotSaved, err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("path", path).
		Int("keys", set.Len()).
		Int64("bytes", n).
		Msg("delta structure saved")
	return nil
}

// Load implements [StructureStore].
func (s *fileStructureStore) Load(ctx context.Context, path string) (*delta.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := CheckInput(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructureNotLoaded, err)
	}
	defer f.Close()

	set, err := delta.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStructureNotLoaded, path, err)
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("path", path).
		Str("hash", set.HashName()).
		Int("keys", set.Len()).
		Msg("delta structure loaded")
	return set, nil
}
