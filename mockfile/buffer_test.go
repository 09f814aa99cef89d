package mockfile

import (
	"math"
	"testing"

	"github.com/michelangelo13/rethinkdb/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Resize(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Resize(8))
	assert.Equal(t, int64(8), b.Len())
	assert.Equal(t, make([]byte, 8), b.Bytes())

	_, err := b.WriteAt([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 0)
	require.NoError(t, err)

	require.NoError(t, b.Resize(4))
	assert.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())

	require.NoError(t, b.Resize(8))
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, b.Bytes())
}

func TestBuffer_Grow(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Grow(16))
	require.NoError(t, b.Grow(4))
	assert.Equal(t, int64(16), b.Len())
}

func TestBuffer_SizeOutOfRange(t *testing.T) {
	b := NewBuffer()
	assert.ErrorIs(t, b.Resize(-1), ErrSizeOutOfRange)
	assert.ErrorIs(t, b.Grow(-1), ErrSizeOutOfRange)

	_, err := b.ReadAt(make([]byte, 1), -1)
	assert.ErrorIs(t, err, ErrSizeOutOfRange)

	_, err = b.WriteAt([]byte{1}, math.MaxInt64)
	assert.ErrorIs(t, err, ErrSizeOutOfRange)
}

func TestBuffer_ReadAt(t *testing.T) {
	b := NewBuffer()
	_, err := b.WriteAt([]byte("abcdef"), 0)
	require.NoError(t, err)

	p := make([]byte, 4)
	n, err := b.ReadAt(p, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ef", string(p[:n]))

	n, err = b.ReadAt(p, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = b.ReadAt(p, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBuffer_WriteAtExtends(t *testing.T) {
	b := NewBuffer()
	n, err := b.WriteAt([]byte("xy"), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0, 0, 0, 'x', 'y'}, b.Bytes())
}

func TestBuffer_BytesIsCopy(t *testing.T) {
	b := NewBuffer()
	_, err := b.WriteAt([]byte("abc"), 0)
	require.NoError(t, err)

	out := b.Bytes()
	out[0] = 'z'
	assert.Equal(t, "abc", string(b.Bytes()))
}

func TestBuffer_Budget(t *testing.T) {
	budget := resource.NewBudget(10)
	b := newBuffer(budget)

	require.NoError(t, b.Resize(10))
	assert.Equal(t, int64(10), budget.Used())

	assert.ErrorIs(t, b.Resize(11), resource.ErrMemoryLimitExceeded)
	assert.Equal(t, int64(10), b.Len())

	_, err := b.WriteAt([]byte{1}, 10)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)

	require.NoError(t, b.Resize(2))
	assert.Equal(t, int64(2), budget.Used())
}

func TestBuffer_Checksum(t *testing.T) {
	a, b := NewBuffer(), NewBuffer()
	assert.Equal(t, a.Checksum(), b.Checksum())

	_, err := a.WriteAt([]byte("payload"), 0)
	require.NoError(t, err)
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	_, err = b.WriteAt([]byte("payload"), 0)
	require.NoError(t, err)
	assert.Equal(t, a.Checksum(), b.Checksum())
}
