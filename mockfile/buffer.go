package mockfile

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dsnet/golib/memfile"
	"github.com/michelangelo13/rethinkdb/internal/conv"
	"github.com/michelangelo13/rethinkdb/internal/hash"
	"github.com/michelangelo13/rethinkdb/internal/resource"
)

// ErrSizeOutOfRange is returned when a size or offset is negative or cannot
// be addressed by a slice on this platform.
var ErrSizeOutOfRange = errors.New("size out of range")

// Buffer holds the contents of one in-memory file.
//
// Handles opened on the same file share one Buffer. The buffer serializes
// individual operations but gives no ordering guarantee between handles.
type Buffer struct {
	mu     sync.Mutex
	f      *memfile.File
	budget *resource.Budget
}

// NewBuffer creates an empty, unlimited buffer.
func NewBuffer() *Buffer {
	return newBuffer(nil)
}

func newBuffer(budget *resource.Budget) *Buffer {
	return &Buffer{
		f:      memfile.New(make([]byte, 0)),
		budget: budget,
	}
}

// Len returns the current size in bytes.
func (b *Buffer) Len() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int64(len(b.f.Bytes()))
}

// Resize sets the size to exactly n. Bytes past the old end read as zero;
// bytes past n are discarded.
func (b *Buffer) Resize(n int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resizeLocked(n)
}

// Grow extends the buffer to n bytes if it is currently smaller.
func (b *Buffer) Grow(n int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n >= 0 && n <= int64(len(b.f.Bytes())) {
		return nil
	}
	return b.resizeLocked(n)
}

func (b *Buffer) resizeLocked(n int64) error {
	size, err := conv.Int64ToInt(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSizeOutOfRange, err)
	}

	old := len(b.f.Bytes())
	if size > old {
		if err := b.budget.Reserve(int64(size - old)); err != nil {
			return err
		}
	}

	if err := b.f.Truncate(n); err != nil {
		if size > old {
			b.budget.Release(int64(size - old))
		}
		return fmt.Errorf("%w: %w", ErrSizeOutOfRange, err)
	}

	if size > old {
		// New bytes read as zero even if the backing array was reused.
		clear(b.f.Bytes()[old:size])
	} else {
		b.budget.Release(int64(old - size))
	}
	return nil
}

// ReadAt copies up to len(p) bytes starting at off into p. It returns fewer
// bytes, without error, when the buffer ends first.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if off < 0 {
		return 0, fmt.Errorf("%w: offset %d", ErrSizeOutOfRange, off)
	}
	if off >= int64(len(b.f.Bytes())) || len(p) == 0 {
		return 0, nil
	}

	n, err := b.f.ReadAt(p, off)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}

// WriteAt copies p into the buffer at off, growing it when the write ends
// past the current size.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	end, err := conv.AddInt64(off, int64(len(p)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSizeOutOfRange, err)
	}
	if end > int64(len(b.f.Bytes())) {
		if err := b.resizeLocked(end); err != nil {
			return 0, err
		}
	}
	if len(p) == 0 {
		return 0, nil
	}
	return b.f.WriteAt(p, off)
}

// Bytes returns a copy of the current contents.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := b.f.Bytes()
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// Checksum returns the CRC32C of the current contents.
func (b *Buffer) Checksum() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return hash.CRC32C(b.f.Bytes())
}
