// Package ringbuf implements the fixed-capacity sample history used by the
// FIR convolver.
package ringbuf

import (
	"github.com/tphakala/go-fir-filter/internal/mathutil"
	"github.com/tphakala/go-fir-filter/internal/simdops"
)

// mirrorFactor is the number of copies of the history kept in storage.
const mirrorFactor = 2

// RingBuffer holds the most recent Len() samples of a stream.
//
// Every sample is stored twice, at cursor and cursor+Len(), so the full
// history is always available as one contiguous slice (see Window). The
// capacity is fixed at construction and the buffer never grows.
//
// RingBuffer is not safe for concurrent use; it is owned by a single convolver.
type RingBuffer[F simdops.Float] struct {
	data   []F
	length int
	cursor int // slot that receives the next sample
}

// New creates a ring buffer holding length samples, all zero.
// It returns nil if length is not positive.
func New[F simdops.Float](length int) *RingBuffer[F] {
	if length < 1 {
		return nil
	}

	return &RingBuffer[F]{
		data:   make([]F, length*mirrorFactor),
		length: length,
	}
}

// Push writes x into the slot at the cursor, evicting the oldest sample,
// and advances the cursor.
func (b *RingBuffer[F]) Push(x F) {
	b.data[b.cursor] = x
	b.data[b.cursor+b.length] = x

	b.cursor++
	if b.cursor == b.length {
		b.cursor = 0
	}
}

// Window returns the resident history ordered oldest first; the newest
// sample is the last element. The slice aliases internal storage and is
// only valid until the next Push or Reset.
func (b *RingBuffer[F]) Window() []F {
	return b.data[b.cursor : b.cursor+b.length]
}

// At returns the sample pushed offset steps before the newest one, so At(0)
// is the newest and At(Len()-1) the oldest resident sample.
func (b *RingBuffer[F]) At(offset int) F {
	return b.data[mathutil.Mod(b.cursor-1-offset, b.length)]
}

// Cursor returns the index of the slot that will receive the next sample.
func (b *RingBuffer[F]) Cursor() int {
	return b.cursor
}

// Len returns the fixed capacity of the buffer.
func (b *RingBuffer[F]) Len() int {
	return b.length
}

// Reset zeroes the history and rewinds the cursor.
func (b *RingBuffer[F]) Reset() {
	clear(b.data)
	b.cursor = 0
}
