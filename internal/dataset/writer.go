// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MKhiriev/go-csv-delta/models"
)

// Writer writes rows as newline-terminated lines.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer over w. Flush must be called once all rows are
// written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64*1024)}
}

// Write writes the text of row followed by a newline.
func (w *Writer) Write(row models.Row) error {
	if _, err := w.bw.WriteString(row.Text); err != nil {
		return fmt.Errorf("error writing line %d: %w", row.Line, err)
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("error writing line %d: %w", row.Line, err)
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
