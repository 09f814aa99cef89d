package mockfile

import (
	"testing"

	"github.com/michelangelo13/rethinkdb/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticCheckingFile_ShortRead(t *testing.T) {
	fo := NewFileOpener(WithSemanticChecking())

	w := fo.OpenSemanticCheckingFile()
	assert.Equal(t, 5, w.SemanticBlockingWrite([]byte("hello")))
	assert.Equal(t, int64(5), w.Offset())

	r := fo.OpenSemanticCheckingFile()
	got := make([]byte, 10)
	require.Equal(t, 5, r.SemanticBlockingRead(got))
	assert.Equal(t, "hello", string(got[:5]))
	assert.Equal(t, int64(5), r.Offset())

	assert.Equal(t, 0, r.SemanticBlockingRead(got))
	assert.Equal(t, int64(5), r.Offset())
}

func TestSemanticCheckingFile_StreamFidelity(t *testing.T) {
	rng := testutil.NewRNG(1)
	stream := make([]byte, 10000)
	rng.FillBytes(stream)

	buf := NewBuffer()
	w := NewSemanticCheckingFile(buf)
	for _, chunk := range testutil.Split(stream, 7) {
		assert.Equal(t, len(chunk), w.SemanticBlockingWrite(chunk))
	}
	assert.Equal(t, int64(len(stream)), buf.Len())

	// Read back with chunk sizes unrelated to the writes.
	r := NewSemanticCheckingFile(buf)
	var got []byte
	chunk := make([]byte, 333)
	for {
		n := r.SemanticBlockingRead(chunk)
		if n == 0 {
			break
		}
		got = append(got, chunk[:n]...)
	}
	assert.Equal(t, stream, got)
}

func TestSemanticCheckingFile_OverwriteWithinStream(t *testing.T) {
	buf := NewBuffer()
	NewSemanticCheckingFile(buf).SemanticBlockingWrite([]byte("abcdef"))

	w := NewSemanticCheckingFile(buf)
	w.SemanticBlockingWrite([]byte("XY"))
	assert.Equal(t, int64(6), buf.Len(), "writes inside the stream must not grow it")
	assert.Equal(t, "XYcdef", string(buf.Bytes()))
}

func TestSemanticCheckingFile_EmptyOperations(t *testing.T) {
	s := NewSemanticCheckingFile(NewBuffer())
	assert.Equal(t, 0, s.SemanticBlockingWrite(nil))
	assert.Equal(t, 0, s.SemanticBlockingRead(nil))
	assert.Equal(t, int64(0), s.Offset())
}

func TestSemanticCheckingFile_Checksum(t *testing.T) {
	payload := testutil.NewRNG(77).AlignedBlock(5000, 8)

	a := NewSemanticCheckingFile(NewBuffer())
	b := NewSemanticCheckingFile(NewBuffer())
	for _, part := range testutil.Split(payload, 3) {
		a.SemanticBlockingWrite(part)
	}
	b.SemanticBlockingWrite(payload)
	assert.Equal(t, a.Checksum(), b.Checksum())

	b.SemanticBlockingWrite([]byte{0})
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestSemanticCheckingFile_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s := NewSemanticCheckingFile(NewBuffer(), WithMetricsCollector(metrics))
	s.SemanticBlockingWrite([]byte("abc"))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.WriteCount)
	assert.Equal(t, int64(3), stats.WriteBytes)
}

func TestNewSemanticCheckingFile_NilBuffer(t *testing.T) {
	requireViolation(t, "NewSemanticCheckingFile", func() { NewSemanticCheckingFile(nil) })
}
