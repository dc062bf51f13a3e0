// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Path validation errors. They are returned before any work starts so a
// misconfigured run never touches its inputs or outputs.
var (
	// ErrInputNotFound is returned when an input path does not name an
	// existing file, standard stream or /dev/fd descriptor.
	ErrInputNotFound = errors.New("file not found")

	// ErrOutputExists is returned when an output path already exists.
	// Outputs are written exactly once and never overwritten.
	ErrOutputExists = errors.New("file exists")

	// ErrGzipOutput is returned for .gz output paths: downstream tooling
	// appends to these artifacts, which gzip output would break.
	ErrGzipOutput = errors.New("cannot directly write to gzip output file")

	// ErrInvalidOutput is returned when an output path can't be written to,
	// e.g. the stdin alias.
	ErrInvalidOutput = errors.New("invalid output path")
)

// Structure persistence errors.
var (
	// ErrStructureNotSaved is returned when a structure could not be written
	// to its backend.
	ErrStructureNotSaved = errors.New("delta structure was not saved")

	// ErrStructureNotLoaded is returned when a structure could not be read
	// from its backend.
	ErrStructureNotLoaded = errors.New("delta structure was not loaded")
)
