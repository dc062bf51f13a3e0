// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_CommitPublishesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pruned.csv")

	out, err := CreateOutput(path)
	require.NoError(t, err)
	assert.Equal(t, path, out.Path())

	_, err = out.Write([]byte("h\nb,9\n"))
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "output must not appear before commit")

	require.NoError(t, out.Commit())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "h\nb,9\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be gone")

	// abort after commit is a no-op
	out.Abort()
	_, err = os.Stat(path)
	assert.NoError(t, err)

	assert.Error(t, out.Commit(), "second commit is rejected")
}

func TestOutput_AbortLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pruned.csv")

	out, err := CreateOutput(path)
	require.NoError(t, err)
	_, err = out.Write([]byte("partial"))
	require.NoError(t, err)

	out.Abort()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOutput_RefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o600))

	_, err := CreateOutput(path)
	require.ErrorIs(t, err, ErrOutputExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestOutput_CommitRefusesRacingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	out, err := CreateOutput(path)
	require.NoError(t, err)
	_, err = out.Write([]byte("new"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("someone else"), 0o600))

	require.ErrorIs(t, out.Commit(), ErrOutputExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "someone else", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOutput_MissingDirectory(t *testing.T) {
	_, err := CreateOutput(filepath.Join(t.TempDir(), "nope", "out.csv"))
	require.Error(t, err)
}

func TestOutput_StdoutIsNotClosed(t *testing.T) {
	out, err := CreateOutput("stdout")
	require.NoError(t, err)
	require.NoError(t, out.Commit())

	// stdout must still be usable
	_, err = os.Stdout.Write(nil)
	assert.NoError(t, err)
}

func TestDiscard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.NoError(t, Discard(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, Discard(path), "discarding a missing file is fine")
	assert.NoError(t, Discard("stdout"))
}
