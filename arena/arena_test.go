package arena

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

func TestNew_FormatsBoundaryHeaders(t *testing.T) {
	a, err := New(100)
	require.NoError(t, err)

	// 100 rounds up to 104.
	require.Equal(t, 104, a.Len())
	data := a.Bytes()

	first, err := format.DecodeHeader(data, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Sentinel(), first.Next)
	assert.Equal(t, uint32(format.NullOffset), first.Previous)
	assert.False(t, first.Allocated)
	assert.Equal(t, 104-2*format.HeaderSize, first.Size())
	assert.Equal(t, a.Capacity(), first.Size())

	sentinel, err := format.DecodeHeader(data, int(a.Sentinel()))
	require.NoError(t, err)
	assert.True(t, sentinel.IsSentinel())
	assert.Equal(t, uint32(0), sentinel.Previous)
}

func TestNew_RejectsBadCapacity(t *testing.T) {
	_, err := New(format.MinArenaSize - format.WordSize - 1)
	require.ErrorIs(t, err, ErrTooSmall)

	_, err = New(-8)
	require.ErrorIs(t, err, ErrTooSmall)

	a, err := New(format.MinArenaSize)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Capacity(), "minimum arena has no payload bytes")
}

func TestWrap(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = 0xFF
	}
	a, err := Wrap(buf)
	require.NoError(t, err)
	assert.Same(t, &buf[0], &a.Bytes()[0], "wrap must not copy")
	assert.Equal(t, uint32(256-format.HeaderSize), format.Next(buf, 0))
	assert.False(t, format.Allocated(buf, 0))

	_, err = Wrap(make([]byte, 60))
	require.ErrorIs(t, err, ErrMisaligned)

	_, err = Wrap(make([]byte, 8))
	require.ErrorIs(t, err, ErrTooSmall)
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(format.MinArenaSize))
	if strconv.IntSize == 64 {
		tooBig := uint64(format.MaxArenaSize) + format.WordSize
		require.ErrorIs(t, Check(int(tooBig)), ErrTooLarge)
	}
	require.ErrorIs(t, Check(33), ErrMisaligned)
}

func TestClose_Idempotent(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.True(t, a.Closed())
	assert.Nil(t, a.Bytes())
	require.NoError(t, a.Close())
}

func TestAdopt_KeepsContent(t *testing.T) {
	buf := make([]byte, 64)
	Format(buf)
	format.PutAllocated(buf, 0, true)

	a, err := Adopt(buf)
	require.NoError(t, err)
	assert.True(t, format.Allocated(a.Bytes(), 0), "adopt must not reformat")

	_, err = Adopt(make([]byte, 12))
	require.ErrorIs(t, err, ErrTooSmall)
}
