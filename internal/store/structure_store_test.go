// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
)

func newTestSet() *delta.Set {
	set := delta.NewSet("hmac_sha256", []byte{9, 8, 7, 6, 5, 4, 3, 2})
	for _, k := range []string{"a,1", "b,2", "c,3"} {
		set.Insert([]byte(k))
	}
	return set
}

func setKeys(set *delta.Set) []string {
	var keys []string
	for k := range set.All() {
		keys = append(keys, string(k))
	}
	return keys
}

func TestStructureStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"structure.bin", "structure.pkl", "structure.db", "structure.sqlite"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := NewStructureStore(logger.Nop())
			path := filepath.Join(t.TempDir(), name)

			want := newTestSet()
			require.NoError(t, s.Save(ctx, path, want))

			got, err := s.Load(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, want.HashName(), got.HashName())
			assert.Equal(t, want.Fingerprint(), got.Fingerprint())
			assert.ElementsMatch(t, setKeys(want), setKeys(got))
		})
	}
}

func TestStructureStore_EmptySet(t *testing.T) {
	for _, name := range []string{"empty.bin", "empty.db"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := NewStructureStore(logger.Nop())
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, s.Save(ctx, path, delta.NewSet("sha512_str", nil)))

			got, err := s.Load(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Len())
			assert.Equal(t, "sha512_str", got.HashName())
			assert.Empty(t, got.Fingerprint())
		})
	}
}

func TestStructureStore_SaveRefusesExisting(t *testing.T) {
	for _, name := range []string{"structure.bin", "structure.db"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

			err := NewStructureStore(logger.Nop()).Save(context.Background(), path, newTestSet())
			require.ErrorIs(t, err, ErrOutputExists)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "old", string(data))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "no temporary files are left behind")
		})
	}
}

func TestStructureStore_LoadMissing(t *testing.T) {
	for _, name := range []string{"missing.bin", "missing.db"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewStructureStore(logger.Nop()).Load(context.Background(), filepath.Join(t.TempDir(), name))
			require.ErrorIs(t, err, ErrInputNotFound)
		})
	}
}

func TestFileStructureStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structure.bin")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, err := NewFileStructureStore(logger.Nop()).Load(context.Background(), path)
	require.ErrorIs(t, err, ErrStructureNotLoaded)
	require.ErrorIs(t, err, delta.ErrCorruptStructure)
}

func TestSQLiteStructureStore_LoadNotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structure.db")
	require.NoError(t, os.WriteFile(path, []byte("definitely not sqlite, just text padding the header out"), 0o600))

	_, err := NewSQLiteStructureStore(logger.Nop()).Load(context.Background(), path)
	require.ErrorIs(t, err, ErrStructureNotLoaded)
}

func TestStructureStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "structure.bin")
	err := NewFileStructureStore(logger.Nop()).Save(ctx, path, newTestSet())
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIsSQLitePath(t *testing.T) {
	assert.True(t, IsSQLitePath("x.db"))
	assert.True(t, IsSQLitePath("x.SQLITE"))
	assert.True(t, IsSQLitePath("dir/x.sqlite3"))
	assert.False(t, IsSQLitePath("x.pkl"))
	assert.False(t, IsSQLitePath("db"))
}
