// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-csv-delta/internal/dataset"
)

// CheckInput verifies that path can be read: it must be a standard stream
// alias, a /dev/fd descriptor or an existing non-directory file.
func CheckInput(path string) error {
	if dataset.IsStdio(path) || dataset.IsFD(path) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("error checking input %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}

// CheckOutput verifies that path may be created: it must not exist yet and
// must not name a gzip file. Standard stream aliases are always accepted
// except stdin.
func CheckOutput(path string) error {
	switch {
	case path == dataset.Stdout || path == dataset.Stderr:
		return nil
	case path == dataset.Stdin || path == "-" || path == "":
		return fmt.Errorf("%w: %q", ErrInvalidOutput, path)
	case dataset.IsFD(path):
		return nil
	case dataset.IsGzip(path):
		return fmt.Errorf("%w: %s", ErrGzipOutput, path)
	}

	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("error checking output %s: %w", path, err)
	}
}
