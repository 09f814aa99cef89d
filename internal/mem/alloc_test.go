package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 511, 512, 513, 4096, 8192 + 7}
	aligns := []int{64, 512, 4096}

	for _, align := range aligns {
		for _, size := range sizes {
			buf := AllocAligned(size, align)
			assert.Len(t, buf, size)
			assert.Equal(t, size, cap(buf), "capacity must not leak the padding")

			addr := uintptr(unsafe.Pointer(&buf[0]))
			assert.Equal(t, uintptr(0), addr%uintptr(align), "Address %d should be aligned to %d for size %d", addr, align, size)
			assert.True(t, IsAligned(buf, align))
		}
	}

	assert.Nil(t, AllocAligned(0, 4096))
	assert.Nil(t, AllocAligned(-1, 4096))
}

func TestAllocAligned_BadAlignment(t *testing.T) {
	assert.Panics(t, func() { AllocAligned(16, 0) })
	assert.Panics(t, func() { AllocAligned(16, 3) })
}

func TestIsAligned(t *testing.T) {
	buf := AllocAligned(8192, 4096)

	assert.True(t, IsAligned(buf, 4096))
	assert.False(t, IsAligned(buf[1:], 4096))
	assert.False(t, IsAligned(buf[512:], 4096))
	assert.True(t, IsAligned(buf[512:], 512))
	assert.True(t, IsAligned(nil, 4096))
	assert.True(t, IsAligned(buf[:0], 4096))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 512, 4096} {
		assert.True(t, IsPowerOfTwo(n), n)
	}
	for _, n := range []int{-4096, 0, 3, 513, 4095} {
		assert.False(t, IsPowerOfTwo(n), n)
	}
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{512, 4096, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size, 4096)
			}
		})
	}
}
