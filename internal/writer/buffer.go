// Package writer is the low-level JSON token writer: a growable byte
// buffer plus the primitive string-escaping and number-formatting
// operations that emit JSON text. The encoder core never grows a []byte or
// decides how to escape a rune itself; it only calls through [Sink].
package writer

import "sync"

// DefaultBufferSize is the capacity a fresh Buffer starts with.
const (
	DefaultBufferSize  = 1024 * 4  // 4KiB, a typical one-object encode
	MaxPooledThreshold = 1024 * 64 // buffers larger than this are not pooled
)

// Buffer is a growable byte buffer tuned for append-only JSON emission.
type Buffer struct {
	B []byte
}

// NewBuffer allocates a Buffer with the given starting capacity.
func NewBuffer(size int) *Buffer {
	return &Buffer{B: make([]byte, 0, size)}
}

// Bytes returns the buffer's contents.
func (b *Buffer) Bytes() []byte { return b.B }

// Reset empties the buffer while retaining its backing array.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.B) }

// Write appends data to the buffer, growing it if necessary.
func (b *Buffer) Write(data []byte) { b.grow(len(data)); b.B = append(b.B, data...) }

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) { b.grow(1); b.B = append(b.B, c) }

// WriteString appends a string's bytes without an intermediate copy.
func (b *Buffer) WriteString(s string) { b.grow(len(s)); b.B = append(b.B, s...) }

// Truncate discards everything after byte offset n, used to roll back a
// partially written value on error.
func (b *Buffer) Truncate(n int) { b.B = b.B[:n] }

// grow ensures there is room for n more bytes, doubling below 4x the
// default size and growing by 25% of capacity above it, otherwise.
func (b *Buffer) grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	growBy := cap(b.B)
	if cap(b.B) > 4*DefaultBufferSize {
		growBy = cap(b.B) / 4
	}

	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

var pool = sync.Pool{
	New: func() any { return NewBuffer(DefaultBufferSize) },
}

// Get retrieves a reset Buffer from the shared pool.
func Get() *Buffer {
	buf, _ := pool.Get().(*Buffer)
	return buf
}

// Put returns buf to the shared pool, discarding it instead if it grew
// past MaxPooledThreshold.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if cap(buf.B) > MaxPooledThreshold {
		return
	}

	buf.Reset()
	pool.Put(buf)
}
