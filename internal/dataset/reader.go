// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-csv-delta/models"
)

// ErrMissingHeader is returned when a dataset has no header row, or when a
// data row shows up before any header in sentinel mode.
var ErrMissingHeader = errors.New("dataset has no header row")

// Option configures a [Reader].
type Option func(*Reader)

// WithHeaderSentinel switches header detection from "first row" to "any row
// containing sentinel". An empty sentinel keeps the default.
func WithHeaderSentinel(sentinel string) Option {
	return func(r *Reader) {
		r.sentinel = sentinel
	}
}

// Reader yields the rows of a dataset one at a time. Only the current line is
// held in memory.
type Reader struct {
	br       *bufio.Reader
	sentinel string

	line      int
	eof       bool
	sawHeader bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	reader := &Reader{br: bufio.NewReaderSize(r, 64*1024)}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next returns the next non-blank row. It returns io.EOF after the last row
// and [ErrMissingHeader] if the stream ends before a header was seen.
func (r *Reader) Next() (models.Row, error) {
	for !r.eof {
		line, err := r.br.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return models.Row{}, fmt.Errorf("error reading line %d: %w", r.line+1, err)
			}
			r.eof = true
			if line == "" {
				break
			}
		}
		r.line++

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		return r.classify(text)
	}

	if !r.sawHeader {
		return models.Row{}, ErrMissingHeader
	}
	return models.Row{}, io.EOF
}

func (r *Reader) classify(text string) (models.Row, error) {
	row := models.Row{Line: r.line, Text: text}

	if r.sentinel == "" {
		row.Header = !r.sawHeader
	} else {
		row.Header = strings.Contains(text, r.sentinel)
	}

	if row.Header {
		r.sawHeader = true
	} else if !r.sawHeader {
		return models.Row{}, fmt.Errorf("%w: data row at line %d", ErrMissingHeader, r.line)
	}

	return row, nil
}
