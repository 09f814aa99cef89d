package mockfile

import (
	"github.com/michelangelo13/rethinkdb/internal/mem"
)

// AlignedBuffer allocates n bytes whose address is a multiple of
// DeviceBlockSize, suitable as the buf argument of ReadAsync and WriteAsync.
func AlignedBuffer(n int) []byte {
	return AlignedBufferSize(n, DeviceBlockSize)
}

// AlignedBufferSize allocates n bytes aligned to blockSize, for files
// configured WithDeviceBlockSize.
func AlignedBufferSize(n, blockSize int) []byte {
	return mem.AllocAligned(n, blockSize)
}

// verifyAlignedFileAccess aborts unless offset, length and the address of
// buf are all multiples of the device block size.
func (e *env) verifyAlignedFileAccess(op string, offset int64, length int, buf []byte) {
	bs := int64(e.blockSize)
	if offset%bs != 0 {
		e.violate(op, "offset %d is not a multiple of the %d byte block size", offset, bs)
	}
	if int64(length)%bs != 0 {
		e.violate(op, "length %d is not a multiple of the %d byte block size", length, bs)
	}
	if !mem.IsAligned(buf, e.blockSize) {
		e.violate(op, "buffer address is not aligned to %d bytes", bs)
	}
}
