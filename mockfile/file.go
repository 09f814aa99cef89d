package mockfile

import (
	"math"
	"strings"
)

// Mode is the set of operations a file handle permits.
type Mode uint8

const (
	// ModeRead permits ReadAsync.
	ModeRead Mode = 1 << iota
	// ModeWrite permits WriteAsync and WritevAsync.
	ModeWrite

	// ModeReadWrite permits everything.
	ModeReadWrite = ModeRead | ModeWrite
)

func (m Mode) String() string {
	var parts []string
	if m&ModeRead != 0 {
		parts = append(parts, "read")
	}
	if m&ModeWrite != 0 {
		parts = append(parts, "write")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Account is the I/O account handle of the disk layer. Files accept it so
// callers keep the real signatures; no prioritization is modeled and nil is
// always fine.
type Account struct {
	Priority                 int
	OutstandingRequestsLimit int
}

// WrapInDatasyncs asks the disk layer to fence a write with datasyncs.
// In-memory files have nothing to sync and ignore it.
type WrapInDatasyncs bool

// Datasync choices for WriteAsync.
const (
	NoDatasyncs   WrapInDatasyncs = false
	WrapDatasyncs WrapInDatasyncs = true
)

// Callback is notified once an asynchronous operation has completed.
type Callback interface {
	OnIOComplete()
}

// CallbackFunc adapts a function to Callback.
type CallbackFunc func()

// OnIOComplete implements Callback.
func (f CallbackFunc) OnIOComplete() { f() }

// File is the contract a serializer expects from its backing file.
//
// Asynchronous operations copy their data before returning but report
// completion through the scheduler only, never from inside the call.
// Contract violations abort with a *ViolationError panic.
type File interface {
	Size() int64
	SetSize(n int64)
	SetSizeAtLeast(n int64)
	ReadAsync(offset int64, length int, buf []byte, account *Account, cb Callback)
	WriteAsync(offset int64, length int, buf []byte, account *Account, cb Callback, datasyncs WrapInDatasyncs)
	WritevAsync(offset int64, length int, bufs [][]byte, account *Account, cb Callback)
	LockAndCheck() bool
}

// MockFile implements File on top of a Buffer.
type MockFile struct {
	mode Mode
	buf  *Buffer
	env  *env
}

var _ File = (*MockFile)(nil)

// NewMockFile creates a handle on buf. mode must not be empty.
func NewMockFile(mode Mode, buf *Buffer, opts ...Option) *MockFile {
	return newMockFile(mode, buf, newEnv(buildOptions(opts)))
}

func newMockFile(mode Mode, buf *Buffer, e *env) *MockFile {
	if mode&ModeReadWrite == 0 {
		e.violate("NewMockFile", "mode %s permits nothing", mode)
	}
	if buf == nil {
		e.violate("NewMockFile", "nil buffer")
	}
	return &MockFile{mode: mode, buf: buf, env: e}
}

// Mode returns the access mode fixed at construction.
func (f *MockFile) Mode() Mode { return f.mode }

// Size returns the current file size.
func (f *MockFile) Size() int64 {
	return f.buf.Len()
}

// SetSize resizes the file to exactly n bytes.
func (f *MockFile) SetSize(n int64) {
	f.resize("SetSize", n, f.buf.Resize)
}

// SetSizeAtLeast grows the file to n bytes if it is smaller. It never shrinks.
func (f *MockFile) SetSizeAtLeast(n int64) {
	f.resize("SetSizeAtLeast", n, f.buf.Grow)
}

func (f *MockFile) resize(op string, n int64, apply func(int64) error) {
	old := f.buf.Len()
	if err := apply(n); err != nil {
		f.env.violate(op, "resize to %d: %v", n, err)
	}
	if now := f.buf.Len(); now != old {
		f.env.metrics.RecordResize(old, now)
		f.env.logger.LogResize(op, old, now)
	}
}

// ReadAsync copies length bytes at offset into buf and posts cb.
func (f *MockFile) ReadAsync(offset int64, length int, buf []byte, _ *Account, cb Callback) {
	const op = "ReadAsync"
	f.checkAccess(op, ModeRead, offset, length, buf, cb)

	if length > 0 {
		if n, err := f.buf.ReadAt(buf[:length], offset); err != nil || n != length {
			f.env.violate(op, "read %d of %d bytes at %d: %v", n, length, offset, err)
		}
	}
	f.env.metrics.RecordRead(length)

	f.complete(cb)
}

// WriteAsync copies length bytes from buf to offset and posts cb.
func (f *MockFile) WriteAsync(offset int64, length int, buf []byte, _ *Account, cb Callback, _ WrapInDatasyncs) {
	const op = "WriteAsync"
	f.checkAccess(op, ModeWrite, offset, length, buf, cb)

	if length > 0 {
		if n, err := f.buf.WriteAt(buf[:length], offset); err != nil || n != length {
			f.env.violate(op, "wrote %d of %d bytes at %d: %v", n, length, offset, err)
		}
	}
	f.env.metrics.RecordWrite(length)

	f.complete(cb)
}

// WritevAsync gathers length bytes from bufs into one block-aligned staging
// buffer and writes it like WriteAsync.
func (f *MockFile) WritevAsync(offset int64, length int, bufs [][]byte, account *Account, cb Callback) {
	const op = "WritevAsync"
	f.requireMode(op, ModeWrite)
	if length < 0 {
		f.env.violate(op, "negative length %d", length)
	}

	staging := AlignedBufferSize(length, f.env.blockSize)
	n := 0
	for _, src := range bufs {
		if n == length {
			break
		}
		n += copy(staging[n:], src)
	}
	if n < length {
		f.env.violate(op, "scatter list holds %d bytes, need %d", n, length)
	}
	f.env.metrics.RecordWritev(len(bufs), length)

	f.WriteAsync(offset, length, staging, account, cb, NoDatasyncs)
}

// LockAndCheck always succeeds; lock contention is not modeled.
func (f *MockFile) LockAndCheck() bool {
	return true
}

func (f *MockFile) requireMode(op string, need Mode) {
	if f.mode&need == 0 {
		f.env.violate(op, "handle opened %s, operation needs %s", f.mode, need)
	}
}

func (f *MockFile) checkAccess(op string, need Mode, offset int64, length int, buf []byte, cb Callback) {
	f.requireMode(op, need)
	if cb == nil {
		f.env.violate(op, "nil callback")
	}
	f.env.verifyAlignedFileAccess(op, offset, length, buf)

	size := f.buf.Len()
	if offset < 0 || length < 0 || offset > math.MaxInt64-int64(length) || offset+int64(length) > size {
		f.env.violate(op, "access [%d, +%d) outside file of %d bytes", offset, length, size)
	}
	if len(buf) < length {
		f.env.violate(op, "buffer holds %d bytes, need %d", len(buf), length)
	}
}

// complete hands cb to the scheduler. Completion is never reported from
// inside the submitting call: callers that free state in the callback must
// not see it run before they return.
func (f *MockFile) complete(cb Callback) {
	metrics := f.env.metrics
	f.env.scheduler.Post(func() {
		cb.OnIOComplete()
		metrics.RecordCompletion()
	})
}
