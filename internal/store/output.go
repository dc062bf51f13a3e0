// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/MKhiriev/go-csv-delta/internal/dataset"
)

// Output is a write-once destination. File outputs are streamed into a
// temporary file next to the destination and only appear under their final
// name after [Output.Commit], so an aborted run leaves nothing behind.
// Standard streams and /dev/fd descriptors are written through directly.
type Output struct {
	path string

	file *os.File
	tmp  string // empty for direct outputs

	closed bool
}

// CreateOutput validates path with [CheckOutput] and opens it for writing.
func CreateOutput(path string) (*Output, error) {
	if err := CheckOutput(path); err != nil {
		return nil, err
	}

	switch {
	case path == dataset.Stdout:
		return &Output{path: path, file: os.Stdout}, nil
	case path == dataset.Stderr:
		return &Output{path: path, file: os.Stderr}, nil
	case dataset.IsFD(path):
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("error opening output %s: %w", path, err)
		}
		return &Output{path: path, file: f}, nil
	}

	f, err := createTemp(path)
	if err != nil {
		return nil, err
	}
	return &Output{path: path, file: f, tmp: f.Name()}, nil
}

// Path returns the final destination path.
func (o *Output) Path() string {
	return o.path
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	return o.file.Write(p)
}

// Commit finalizes the output. For file outputs the temporary file is synced
// and moved into place; the destination must still not exist.
func (o *Output) Commit() error {
	if o.closed {
		return fmt.Errorf("output %s already finalized", o.path)
	}
	o.closed = true

	if o.tmp == "" {
		if o.isStdStream() {
			return nil
		}
		return o.file.Close()
	}

	if err := o.file.Sync(); err != nil {
		o.discard()
		return fmt.Errorf("error syncing output %s: %w", o.path, err)
	}
	if err := o.file.Close(); err != nil {
		o.discard()
		return fmt.Errorf("error closing output %s: %w", o.path, err)
	}

	return commitTemp(o.tmp, o.path)
}

// Abort discards an uncommitted output. It is a no-op after Commit, which
// makes `defer out.Abort()` safe.
func (o *Output) Abort() {
	if o.closed {
		return
	}
	o.closed = true

	if o.tmp == "" {
		if !o.isStdStream() {
			o.file.Close()
		}
		return
	}
	o.file.Close()
	o.discard()
}

func (o *Output) isStdStream() bool {
	return o.file == os.Stdout || o.file == os.Stderr
}

func (o *Output) discard() {
	os.Remove(o.tmp)
}

// createTemp creates a hidden temporary file in the destination directory so
// the final rename never crosses a filesystem boundary.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("error creating output %s: %w", path, err)
	}
	return f, nil
}

// commitTemp moves tmp to path unless path appeared in the meantime.
func commitTemp(tmp, path string) error {
	if _, err := os.Lstat(path); err == nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		os.Remove(tmp)
		return fmt.Errorf("error checking output %s: %w", path, err)
	}

	if err := atomic.ReplaceFile(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error committing output %s: %w", path, err)
	}
	return nil
}

// Discard removes a committed file output. It is used to roll back the
// first output of a run when a later one fails.
func Discard(path string) error {
	if dataset.IsStdio(path) || dataset.IsFD(path) {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error discarding output %s: %w", path, err)
	}
	return nil
}
