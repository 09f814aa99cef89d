package mockfile

// SemanticCheckingFile is a sequential, blocking view of a Buffer. A
// cross-checking harness replays the stream it expects the serializer to
// produce and compares the result against the real output.
type SemanticCheckingFile struct {
	buf *Buffer
	pos int64
	env *env
}

// NewSemanticCheckingFile creates a stream positioned at the start of buf.
func NewSemanticCheckingFile(buf *Buffer, opts ...Option) *SemanticCheckingFile {
	return newSemanticCheckingFile(buf, newEnv(buildOptions(opts)))
}

func newSemanticCheckingFile(buf *Buffer, e *env) *SemanticCheckingFile {
	if buf == nil {
		e.violate("NewSemanticCheckingFile", "nil buffer")
	}
	return &SemanticCheckingFile{buf: buf, env: e}
}

// SemanticBlockingRead copies up to len(buf) bytes from the cursor into buf
// and advances past them. It returns the number of bytes copied, which is
// short when the stream ends first.
func (s *SemanticCheckingFile) SemanticBlockingRead(buf []byte) int {
	n, err := s.buf.ReadAt(buf, s.pos)
	if err != nil {
		s.env.violate("SemanticBlockingRead", "read at %d: %v", s.pos, err)
	}
	s.pos += int64(n)
	return n
}

// SemanticBlockingWrite copies buf to the cursor, growing the stream as
// needed, and advances past it. It always returns len(buf).
func (s *SemanticCheckingFile) SemanticBlockingWrite(buf []byte) int {
	n, err := s.buf.WriteAt(buf, s.pos)
	if err != nil || n != len(buf) {
		s.env.violate("SemanticBlockingWrite", "wrote %d of %d bytes at %d: %v", n, len(buf), s.pos, err)
	}
	s.pos += int64(n)
	s.env.metrics.RecordWrite(n)
	return n
}

// Offset returns the cursor position.
func (s *SemanticCheckingFile) Offset() int64 { return s.pos }

// Checksum returns the CRC32C of the whole stream, independent of the cursor.
func (s *SemanticCheckingFile) Checksum() uint32 {
	return s.buf.Checksum()
}
