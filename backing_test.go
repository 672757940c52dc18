package scalgoproto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapBackingGrowsAndPreservesData(t *testing.T) {
	hb := NewHeapBacking(4)
	data, err := hb.SetCapacity(4)
	require.NoError(t, err)
	copy(data, []byte{1, 2, 3, 4})

	grown, err := hb.SetCapacity(16)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(grown), 16)
	assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])
}

func TestHeapBackingReleaseOnZero(t *testing.T) {
	hb := NewHeapBacking(8)
	data, err := hb.SetCapacity(0)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestHeapBackingFinalizeIsNoop(t *testing.T) {
	hb := NewHeapBacking(8)
	assert.NoError(t, hb.Finalize(8))
}

func TestFileBackingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.bin")
	fb, err := NewFileBacking(path)
	require.NoError(t, err)

	w, err := NewWriterWithBacking(fb)
	require.NoError(t, err)
	root, err := w.Construct(4, nil)
	require.NoError(t, err)
	SetPod[uint32](root, 0, 99)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	r := NewReader(onDisk)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)
	assert.Equal(t, uint32(99), GetPod[uint32](view, 0))
}
