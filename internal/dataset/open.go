// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Standard stream aliases accepted in place of file paths.
const (
	Stdin  = "stdin"
	Stdout = "stdout"
	Stderr = "stderr"

	fdPrefix = "/dev/fd/"
)

var gzipMagic = []byte{0x1f, 0x8b}

// IsStdio reports whether path names a standard stream rather than a file.
func IsStdio(path string) bool {
	switch path {
	case Stdin, Stdout, Stderr, "-":
		return true
	}
	return false
}

// IsFD reports whether path is a /dev/fd/N descriptor path, which may be
// valid even when it doesn't show up as a regular file.
func IsFD(path string) bool {
	return strings.HasPrefix(path, fdPrefix)
}

// IsGzip reports whether path is named like a gzip file.
func IsGzip(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// Open opens a dataset for reading. "stdin" and "-" read standard input.
// Compressed input is recognised by a .gz suffix or by the gzip magic bytes
// and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	switch {
	case path == Stdin || path == "-":
		src = io.NopCloser(os.Stdin)
	case path == Stdout || path == Stderr:
		return nil, fmt.Errorf("can't read dataset from %s", path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening dataset %s: %w", path, err)
		}
		src = f
	}

	br := bufio.NewReader(src)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		src.Close()
		return nil, fmt.Errorf("error reading dataset %s: %w", path, err)
	}

	if !IsGzip(path) && !bytes.Equal(head, gzipMagic) {
		return &readCloser{Reader: br, closers: []io.Closer{src}}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("error opening gzip dataset %s: %w", path, err)
	}
	return &readCloser{Reader: zr, closers: []io.Closer{zr, src}}, nil
}

// readCloser closes every layer of a decoded input, innermost first.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
