package strategy

import (
	"errors"
)

// ErrBufferFull is returned when a write would exceed a FixedBuffer's
// capacity.
var ErrBufferFull = errors.New("fixed buffer full")

// FixedBuffer is an io.Writer over a buffer whose capacity never grows.
type FixedBuffer struct {
	buf []byte
}

// NewFixedBuffer returns a FixedBuffer holding at most size bytes.
func NewFixedBuffer(size int) FixedBuffer {
	return FixedBuffer{buf: make([]byte, 0, size)}
}

// Write appends p, or fails without writing anything if p does not fit.
func (b *FixedBuffer) Write(p []byte) (int, error) {
	if len(b.buf)+len(p) > cap(b.buf) {
		return 0, ErrBufferFull
	}

	b.buf = append(b.buf, p...)

	return len(p), nil
}

// Reset truncates the buffer.
func (b *FixedBuffer) Reset() {
	b.buf = b.buf[:0]
}

// Bytes returns the written bytes.
func (b *FixedBuffer) Bytes() []byte {
	return b.buf
}

// Cap returns the fixed capacity.
func (b *FixedBuffer) Cap() int {
	return cap(b.buf)
}
