// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-csv-delta/internal/config"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/internal/service"
	"github.com/MKhiriev/go-csv-delta/internal/store"
)

const header = "id,name"

// writeCSV writes header followed by rows.
func writeCSV(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()
	return writeLines(t, dir, name, append([]string{header}, rows...)...)
}

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return p
}

func writeGzipCSV(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(strings.Join(append([]string{header}, rows...), "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o600))
	return p
}

// readLines returns the non-empty lines of the file at p.
func readLines(t *testing.T, p string) []string {
	t.Helper()
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	return strings.Fields(string(data))
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// protocol holds the paths of one full build, client check, server check
// round.
type protocol struct {
	dir        string
	oldCSV     string
	newCSV     string
	built      string
	pruned     string
	prunedCSV  string
	removedCSV string
	hash       config.Hash
}

func newProtocol(t *testing.T, structureName string, oldRows, newRows []string) *protocol {
	t.Helper()
	dir := t.TempDir()
	return &protocol{
		dir:        dir,
		oldCSV:     writeCSV(t, dir, "old.csv", oldRows...),
		newCSV:     writeCSV(t, dir, "new.csv", newRows...),
		built:      filepath.Join(dir, "built-"+structureName),
		pruned:     filepath.Join(dir, "pruned-"+structureName),
		prunedCSV:  filepath.Join(dir, "pruned.csv"),
		removedCSV: filepath.Join(dir, "removed.csv"),
		hash:       config.Hash{Func: "sha512_str"},
	}
}

func (p *protocol) buildConfig() *config.BuildConfig {
	return &config.BuildConfig{InputCSV: p.oldCSV, OutputStructure: p.built, Hash: p.hash}
}

func (p *protocol) clientConfig() *config.ClientCheckConfig {
	return &config.ClientCheckConfig{
		InputCSV:        p.newCSV,
		InputStructure:  p.built,
		OutputCSV:       p.prunedCSV,
		OutputStructure: p.pruned,
	}
}

func (p *protocol) serverConfig() *config.ServerCheckConfig {
	return &config.ServerCheckConfig{
		InputCSV:       p.oldCSV,
		InputStructure: p.pruned,
		OutputCSV:      p.removedCSV,
	}
}

func (p *protocol) run(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	services := service.NewServices(logger.Nop())
	structures := store.NewStructureStore(logger.Nop())

	build, err := NewBuildApp(p.buildConfig(), services, structures, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, build.Run(ctx))

	client, err := NewClientCheckApp(p.clientConfig(), services, structures, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, client.Run(ctx))

	server, err := NewServerCheckApp(p.serverConfig(), services, structures, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, server.Run(ctx))
}
