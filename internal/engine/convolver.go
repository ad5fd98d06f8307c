// Package engine implements the streaming FIR convolution engine.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-fir-filter/internal/ringbuf"
	"github.com/tphakala/go-fir-filter/internal/simdops"
)

// ErrInvalidTaps is returned when the convolver cannot be built from the
// given coefficient vector.
var ErrInvalidTaps = errors.New("invalid filter taps")

// Convolver applies a fixed FIR filter to a stream one sample at a time.
//
// Type parameter F must be float32 or float64 and sets the precision of the
// history and the multiply-accumulate. Coefficients are always designed in
// float64 and converted once at construction.
//
// For every input x the convolver computes
//
//	y[n] = gain · Σ_{k=0}^{N} h[k] · x[n-k]
//
// where gain = OutputScale · volume. The history holds exactly N+1 samples,
// so memory is bounded and the output does not depend on how the input is
// split into blocks.
//
// A Convolver is not safe for concurrent use.
type Convolver[F simdops.Float] struct {
	// Filter
	coeffs   []float64 // as designed, returned by Coefficients
	reversed []F       // h[N-k], aligned with the oldest-first history window
	gain     F

	// State
	history *ringbuf.RingBuffer[F]

	// SIMD operations for type F
	ops *simdops.Ops[F]

	// Statistics
	samplesIn  int64
	samplesOut int64
}

// NewConvolver creates a convolver for the given taps. volume scales the
// output on top of OutputScale and must be positive.
func NewConvolver[F simdops.Float](coeffs []float64, volume float64) (*Convolver[F], error) {
	if len(coeffs) < minTaps || len(coeffs) > maxTaps {
		return nil, fmt.Errorf("%w: %d taps (must be %d-%d)", ErrInvalidTaps, len(coeffs), minTaps, maxTaps)
	}

	if !(volume > 0) || math.IsInf(volume, 0) {
		return nil, fmt.Errorf("%w: volume must be positive, got %g", ErrInvalidTaps, volume)
	}

	n := len(coeffs)
	c := &Convolver[F]{
		coeffs:   make([]float64, n),
		reversed: make([]F, n),
		gain:     F(OutputScale * volume),
		history:  ringbuf.New[F](n),
		ops:      simdops.For[F](),
	}
	copy(c.coeffs, coeffs)

	for k, h := range coeffs {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return nil, fmt.Errorf("%w: tap %d is %g", ErrInvalidTaps, k, h)
		}
		c.reversed[n-1-k] = F(h)
	}

	return c, nil
}

// ProcessSample pushes x into the history and returns the filtered sample.
func (c *Convolver[F]) ProcessSample(x F) F {
	c.history.Push(x)

	// The window is oldest first, so pairing it with the reversed taps
	// multiplies h[k] with the sample k steps before the newest.
	y := c.ops.DotProductUnsafe(c.history.Window(), c.reversed)

	c.samplesIn++
	c.samplesOut++
	return y * c.gain
}

// Process filters a block and returns a new slice of the same length.
func (c *Convolver[F]) Process(input []F) []F {
	output := make([]F, len(input))
	c.ProcessInto(output, input)
	return output
}

// ProcessInto filters src into dst. dst must be at least len(src) long and
// may alias src.
func (c *Convolver[F]) ProcessInto(dst, src []F) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		c.history.Push(x)
		dst[i] = c.ops.DotProductUnsafe(c.history.Window(), c.reversed)
	}
	c.ops.Scale(dst[:len(src)], dst[:len(src)], c.gain)

	c.samplesIn += int64(len(src))
	c.samplesOut += int64(len(src))
}

// Flush feeds Len() zero samples through the filter and returns the
// resulting outputs, draining everything still held in the history.
func (c *Convolver[F]) Flush() []F {
	output := make([]F, c.Len())
	for i := range output {
		output[i] = c.ProcessSample(0)
	}
	c.samplesIn -= int64(len(output))
	return output
}

// Reset clears the history and statistics. The taps and gain are kept.
func (c *Convolver[F]) Reset() {
	c.history.Reset()
	c.samplesIn = 0
	c.samplesOut = 0
}

// Len returns the number of taps, which is also the history length and the
// flush tail length.
func (c *Convolver[F]) Len() int {
	return len(c.coeffs)
}

// Order returns the filter order (taps - 1).
func (c *Convolver[F]) Order() int {
	return len(c.coeffs) - 1
}

// Latency returns the group delay of a symmetric filter in samples.
func (c *Convolver[F]) Latency() int {
	return c.Order() / latencyDivisor
}

// Gain returns the output gain (OutputScale · volume).
func (c *Convolver[F]) Gain() float64 {
	return float64(c.gain)
}

// Coefficients returns a copy of the taps.
func (c *Convolver[F]) Coefficients() []float64 {
	out := make([]float64, len(c.coeffs))
	copy(out, c.coeffs)
	return out
}

// GetStatistics returns processing statistics. Flush outputs count towards
// samplesOut but not samplesIn.
func (c *Convolver[F]) GetStatistics() map[string]int64 {
	return map[string]int64{
		"samplesIn":  c.samplesIn,
		"samplesOut": c.samplesOut,
	}
}
