package firfilter

import (
	"fmt"

	"github.com/tphakala/go-fir-filter/internal/engine"
	"github.com/tphakala/go-fir-filter/internal/simdops"
)

// Float is the sample type constraint: float32 or float64.
type Float = simdops.Float

// Filter is a streaming FIR filter. Every input sample produces exactly one
// output sample; Flush drains the Order+1 samples of history at end of
// stream. Splitting the input into blocks of any size gives the same output.
//
// A Filter is not safe for concurrent use.
type Filter[F Float] struct {
	conv *engine.Convolver[F]
	spec FilterSpec
}

// New designs the coefficients described by config and builds a filter.
func New[F Float](config *Config) (*Filter[F], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := Design(config.Spec)
	if err != nil {
		return nil, err
	}

	conv, err := engine.NewConvolver[F](coeffs, config.volume())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return &Filter[F]{conv: conv, spec: config.Spec}, nil
}

// NewFromCoefficients builds a filter from precomputed taps. volume zero
// selects DefaultVolume. Spec returns the zero FilterSpec for such filters.
func NewFromCoefficients[F Float](coeffs []float64, volume float64) (*Filter[F], error) {
	if volume == 0 {
		volume = DefaultVolume
	}
	conv, err := engine.NewConvolver[F](coeffs, volume)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return &Filter[F]{conv: conv}, nil
}

// ProcessSample filters one sample.
func (f *Filter[F]) ProcessSample(x F) F {
	return f.conv.ProcessSample(x)
}

// Process filters a block and returns a new slice of the same length.
func (f *Filter[F]) Process(input []F) []F {
	return f.conv.Process(input)
}

// ProcessInto filters src into dst, which must be at least len(src) long.
// dst may be src.
func (f *Filter[F]) ProcessInto(dst, src []F) {
	f.conv.ProcessInto(dst, src)
}

// Flush feeds Len() zeros through the filter and returns the tail.
func (f *Filter[F]) Flush() []F {
	return f.conv.Flush()
}

// Reset clears the history so the filter can start a new stream.
func (f *Filter[F]) Reset() {
	f.conv.Reset()
}

// Len returns the number of taps.
func (f *Filter[F]) Len() int {
	return f.conv.Len()
}

// Order returns the filter order.
func (f *Filter[F]) Order() int {
	return f.conv.Order()
}

// Latency returns the group delay in samples (Order/2).
func (f *Filter[F]) Latency() int {
	return f.conv.Latency()
}

// Coefficients returns a copy of the taps.
func (f *Filter[F]) Coefficients() []float64 {
	return f.conv.Coefficients()
}

// Spec returns the design the filter was built from.
func (f *Filter[F]) Spec() FilterSpec {
	return f.spec
}

// Gain returns the output gain, OutputScale times the volume.
func (f *Filter[F]) Gain() float64 {
	return f.conv.Gain()
}

// GetStatistics returns the sample counters.
func (f *Filter[F]) GetStatistics() map[string]int64 {
	return f.conv.GetStatistics()
}
