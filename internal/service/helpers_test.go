// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-csv-delta/internal/dataset"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/models"
	"github.com/stretchr/testify/require"
)

const header = "name,value"

// csvRows builds a Reader over header followed by rows.
func csvRows(rows ...string) *dataset.Reader {
	lines := append([]string{header}, rows...)
	return dataset.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// collector is an in-memory RowWriter.
type collector struct {
	rows []models.Row
	err  error
}

func (c *collector) Write(row models.Row) error {
	if c.err != nil {
		return c.err
	}
	c.rows = append(c.rows, row)
	return nil
}

func (c *collector) texts() []string {
	out := make([]string, 0, len(c.rows))
	for _, r := range c.rows {
		out = append(out, r.Text)
	}
	return out
}

// failingReader returns err after yielding rows.
type failingReader struct {
	rows []models.Row
	err  error
}

func (f *failingReader) Next() (models.Row, error) {
	if len(f.rows) == 0 {
		return models.Row{}, f.err
	}
	row := f.rows[0]
	f.rows = f.rows[1:]
	return row, nil
}

var errBroken = errors.New("broken pipe")

func sha512Hasher(t *testing.T) hasher.Hasher {
	t.Helper()
	h, err := hasher.New(hasher.SHA512, "")
	require.NoError(t, err)
	return h
}
