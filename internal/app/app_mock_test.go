// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-csv-delta/internal/delta"
	"github.com/MKhiriev/go-csv-delta/internal/hasher"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/internal/mock"
	"github.com/MKhiriev/go-csv-delta/internal/service"
	"github.com/MKhiriev/go-csv-delta/internal/store"
)

var errDiskFull = errors.New("disk full")

// builtSet returns the structure a build of rows would produce with SHA-512.
func builtSet(t *testing.T, rows ...string) *delta.Set {
	t.Helper()
	h, err := hasher.New(hasher.SHA512, "")
	require.NoError(t, err)

	set := delta.NewSet(h.Name(), h.Fingerprint())
	for _, r := range rows {
		set.Insert(h.Key(r))
	}
	return set
}

// touch creates an empty placeholder so input path checks pass when the
// structure store is mocked.
func touch(t *testing.T, p string) {
	t.Helper()
	require.NoError(t, os.WriteFile(p, nil, 0o600))
}

func TestBuildApp_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	structures := mock.NewMockStructureStore(ctrl)
	p := newProtocol(t, "structure.bin", []string{"a,1", "b,2"}, nil)

	structures.EXPECT().
		Save(gomock.Any(), p.built, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set *delta.Set) error {
			assert.Equal(t, 2, set.Len())
			return errDiskFull
		})

	build, err := NewBuildApp(p.buildConfig(), service.NewServices(logger.Nop()), structures, logger.Nop())
	require.NoError(t, err)

	err = build.Run(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), MsgSaveStructureFailed)
}

func TestClientCheckApp_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	structures := mock.NewMockStructureStore(ctrl)
	p := newProtocol(t, "structure.bin", nil, []string{"a,1"})
	touch(t, p.built)

	structures.EXPECT().Load(gomock.Any(), p.built).Return(nil, delta.ErrCorruptStructure)

	client, err := NewClientCheckApp(p.clientConfig(), service.NewServices(logger.Nop()), structures, logger.Nop())
	require.NoError(t, err)

	err = client.Run(context.Background())
	require.ErrorIs(t, err, delta.ErrCorruptStructure)
	assert.False(t, exists(p.prunedCSV))
}

// A failed structure save must not publish the pruned dataset.
func TestClientCheckApp_SaveFailureAbortsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	structures := mock.NewMockStructureStore(ctrl)
	p := newProtocol(t, "structure.bin", nil, []string{"a,1", "b,2"})
	touch(t, p.built)

	gomock.InOrder(
		structures.EXPECT().Load(gomock.Any(), p.built).Return(builtSet(t, "a,1", "c,3"), nil),
		structures.EXPECT().
			Save(gomock.Any(), p.pruned, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, set *delta.Set) error {
				assert.Equal(t, 1, set.Len(), "only c,3 is left")
				return errDiskFull
			}),
	)

	client, err := NewClientCheckApp(p.clientConfig(), service.NewServices(logger.Nop()), structures, logger.Nop())
	require.NoError(t, err)

	err = client.Run(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	assert.False(t, exists(p.prunedCSV))

	entries, err := os.ReadDir(p.dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "temporary output left behind")
	}
}

// When the dataset cannot be published after the structure was saved, the
// saved structure is rolled back.
func TestClientCheckApp_CommitFailureRollsBackStructure(t *testing.T) {
	ctrl := gomock.NewController(t)
	structures := mock.NewMockStructureStore(ctrl)
	p := newProtocol(t, "structure.bin", nil, []string{"a,1"})
	touch(t, p.built)

	structures.EXPECT().Load(gomock.Any(), p.built).Return(builtSet(t), nil)
	structures.EXPECT().
		Save(gomock.Any(), p.pruned, gomock.Any()).
		DoAndReturn(func(_ context.Context, path string, _ *delta.Set) error {
			touch(t, path)
			// another writer grabs the csv destination before commit
			touch(t, p.prunedCSV)
			return nil
		})

	client, err := NewClientCheckApp(p.clientConfig(), service.NewServices(logger.Nop()), structures, logger.Nop())
	require.NoError(t, err)

	err = client.Run(context.Background())
	require.ErrorIs(t, err, store.ErrOutputExists)
	assert.Contains(t, err.Error(), MsgCommitOutputFailed)
	assert.False(t, exists(p.pruned), "saved structure must be rolled back")
}

func TestServerCheckApp_DoesNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	structures := mock.NewMockStructureStore(ctrl)
	p := newProtocol(t, "structure.bin", []string{"a,1", "b,2", "a,1"}, nil)
	touch(t, p.pruned)

	structures.EXPECT().Load(gomock.Any(), p.pruned).Return(builtSet(t, "a,1"), nil)

	server, err := NewServerCheckApp(p.serverConfig(), service.NewServices(logger.Nop()), structures, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, server.Run(context.Background()))

	assert.Equal(t, []string{"a,1"}, readLines(t, p.removedCSV))
}

func TestServerCheckApp_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	structures := mock.NewMockStructureStore(ctrl)
	p := newProtocol(t, "structure.bin", []string{"a,1"}, nil)
	touch(t, p.pruned)

	structures.EXPECT().Load(gomock.Any(), p.pruned).Return(builtSet(t, "a,1"), nil)

	server, err := NewServerCheckApp(p.serverConfig(), service.NewServices(logger.Nop()), structures, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, server.Run(ctx), context.Canceled)
	assert.False(t, exists(p.removedCSV))
}
