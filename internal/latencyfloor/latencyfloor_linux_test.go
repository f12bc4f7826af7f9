//go:build linux

package latencyfloor

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHoldMissingDeviceIsUnavailable(t *testing.T) {
	h, err := Hold(filepath.Join(t.TempDir(), "no-such-device"), 0)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Nil(t, h)
	require.NoError(t, h.Close())
}

func TestHoldWritesTarget(t *testing.T) {
	// A regular file stands in for the device node.
	path := filepath.Join(t.TempDir(), "cpu_dma_latency")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	h, err := Hold(path, 42)
	require.NoError(t, err)
	require.Equal(t, path, h.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 4)
	require.Equal(t, uint32(42), binary.NativeEndian.Uint32(data))

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
}

func TestHoldOtherErrorsAreReported(t *testing.T) {
	// Opening a directory read-write fails with EISDIR, not ENOENT.
	h, err := Hold(t.TempDir(), 0)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnavailable)
	require.Nil(t, h)
}
