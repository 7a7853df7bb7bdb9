package s3file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialState(t *testing.T) {
	buf := []byte("s3\nendhdr\n")
	f := New(buf)

	assert.Equal(t, len(buf), f.Remaining())
	assert.Equal(t, 0, f.NumHeaders())
	assert.False(t, f.Swapped())
	assert.Equal(t, uint32(0), f.Checksum())
}

func TestRetainRelease(t *testing.T) {
	f := New(hdrImage(nativeMarker()))
	require.Same(t, f, f.Retain())

	assert.False(t, f.Release(), "one reference should remain")
	assert.True(t, f.Release(), "last release should free the handle")
}

func TestReleasePastZeroPanics(t *testing.T) {
	f := New(nil)
	require.True(t, f.Release())
	assert.Panics(t, func() { f.Release() })
}

func TestReleaseClearsBookkeeping(t *testing.T) {
	f := New(hdrImage(nativeMarker(), "version 1"))
	require.NoError(t, f.ParseHeader())
	require.Equal(t, 1, f.NumHeaders())

	require.True(t, f.Release())
	assert.Equal(t, 0, f.NumHeaders())
	assert.Equal(t, 0, f.Remaining())

	var scratch [1]byte
	assert.ErrorIs(t, f.Get(scratch[:], 1, 1), ErrNoHeader)
}

func TestIndependentHandlesShareNothing(t *testing.T) {
	buf := buildFile(t, nil, func(w *Writer) {
		require.NoError(t, Put1D(w, []int32{7, 8, 9}))
	})

	a := parsed(t, buf)
	b := parsed(t, buf)

	got, err := Get1D[int32](a)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 8, 9}, got)

	// b's cursor is untouched by a's reads.
	assert.NotEqual(t, a.Remaining(), b.Remaining())
	got, err = Get1D[int32](b)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 8, 9}, got)
	require.NoError(t, a.VerifyChecksum())
	require.NoError(t, b.VerifyChecksum())
}
