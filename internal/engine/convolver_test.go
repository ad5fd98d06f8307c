package engine

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fir-filter/internal/filter"
	"github.com/tphakala/go-fir-filter/internal/testutil"
)

const (
	testSampleRate = 44100.0
	testOrder      = 126
	testVolume     = 1.5
)

func designTaps(t *testing.T, typ filter.Type, order int) []float64 {
	t.Helper()
	coeffs, err := filter.Design(filter.Params{
		Type:        typ,
		Window:      filter.WindowHamming,
		Order:       order,
		Cutoff:      2000,
		UpperCutoff: 6000,
		SampleRate:  testSampleRate,
	})
	require.NoError(t, err)
	return coeffs
}

func noise(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// runChunked filters input split into blocks of the given size and appends
// the flush tail.
func runChunked(t *testing.T, coeffs, input []float64, blockSize int) []float64 {
	t.Helper()
	c, err := NewConvolver[float64](coeffs, testVolume)
	require.NoError(t, err)

	var output []float64
	for start := 0; start < len(input); start += blockSize {
		end := min(start+blockSize, len(input))
		output = append(output, c.Process(input[start:end])...)
	}
	return append(output, c.Flush()...)
}

// TestConvolver_ImpulseReproducesTaps feeds a unit impulse and expects the
// taps, scaled by OutputScale·volume, followed by silence.
func TestConvolver_ImpulseReproducesTaps(t *testing.T) {
	for _, typ := range []filter.Type{filter.Lowpass, filter.Highpass, filter.Bandpass, filter.Bandstop} {
		t.Run(typ.String(), func(t *testing.T) {
			coeffs := designTaps(t, typ, testOrder)
			c, err := NewConvolver[float64](coeffs, testVolume)
			require.NoError(t, err)

			input := make([]float64, len(coeffs)+10)
			input[0] = 1
			output := append(c.Process(input), c.Flush()...)

			require.Len(t, output, len(input)+len(coeffs))
			scale := OutputScale * testVolume
			for i, h := range coeffs {
				assert.InDelta(t, scale*h, output[i], testutil.DefaultTolerance, "output[%d]", i)
			}
			testutil.AssertAllZero(t, output[len(coeffs):])
		})
	}
}

// TestConvolver_OutputLength checks input length + flush tail for several sizes.
func TestConvolver_OutputLength(t *testing.T) {
	coeffs := designTaps(t, filter.Lowpass, 20)

	for _, n := range []int{0, 1, 20, 21, 1000} {
		output := runChunked(t, coeffs, noise(n, uint64(n)+1), 7)
		assert.Len(t, output, n+len(coeffs), "input length %d", n)
	}
}

// TestConvolver_ChunkingInvariance verifies that block boundaries do not
// change a single output sample.
func TestConvolver_ChunkingInvariance(t *testing.T) {
	coeffs := designTaps(t, filter.Bandpass, testOrder)
	input := noise(5000, 42)

	reference := runChunked(t, coeffs, input, len(input))
	for _, blockSize := range []int{1, 2, 3, 64, 127, 128, 1024, 4999} {
		output := runChunked(t, coeffs, input, blockSize)
		require.Equal(t, reference, output, "block size %d", blockSize)
	}
}

// TestConvolver_ZeroIsFixedPoint feeds silence into a fresh convolver.
func TestConvolver_ZeroIsFixedPoint(t *testing.T) {
	coeffs := designTaps(t, filter.Highpass, testOrder)
	c, err := NewConvolver[float64](coeffs, DefaultVolume)
	require.NoError(t, err)

	output := c.Process(make([]float64, 3*len(coeffs)))
	testutil.AssertAllZero(t, output)
	testutil.AssertAllZero(t, c.Flush())
}

// TestConvolver_MatchesDirectSum compares the SIMD path with the textbook
// direct-form sum read backwards through the ring with true modulo.
func TestConvolver_MatchesDirectSum(t *testing.T) {
	coeffs := designTaps(t, filter.Lowpass, 32)
	c, err := NewConvolver[float64](coeffs, testVolume)
	require.NoError(t, err)

	for i, x := range noise(500, 7) {
		got := c.ProcessSample(x)

		var want float64
		for k, h := range coeffs {
			want += h * c.history.At(k)
		}
		want *= OutputScale * testVolume

		assert.InDelta(t, want, got, 1e-12, "sample %d", i)
	}
}

// TestConvolver_Float32 runs the impulse test at single precision.
func TestConvolver_Float32(t *testing.T) {
	coeffs := designTaps(t, filter.Lowpass, testOrder)
	c, err := NewConvolver[float32](coeffs, DefaultVolume)
	require.NoError(t, err)

	input := make([]float32, len(coeffs))
	input[0] = 1
	output := append(c.Process(input), c.Flush()...)

	require.Len(t, output, 2*len(coeffs))
	for i, h := range coeffs {
		assert.InDelta(t, OutputScale*h, float64(output[i]), testutil.Float32Tolerance, "output[%d]", i)
	}
}

// TestConvolver_ProcessIntoInPlace checks that dst may alias src.
func TestConvolver_ProcessIntoInPlace(t *testing.T) {
	coeffs := designTaps(t, filter.Lowpass, 16)
	input := noise(200, 3)

	a, err := NewConvolver[float64](coeffs, DefaultVolume)
	require.NoError(t, err)
	b, err := NewConvolver[float64](coeffs, DefaultVolume)
	require.NoError(t, err)

	want := a.Process(input)
	buf := append([]float64(nil), input...)
	b.ProcessInto(buf, buf)
	assert.Equal(t, want, buf)
}

func TestConvolver_Reset(t *testing.T) {
	coeffs := designTaps(t, filter.Lowpass, 16)
	c, err := NewConvolver[float64](coeffs, DefaultVolume)
	require.NoError(t, err)

	first := c.Process(noise(100, 9))
	c.Reset()
	assert.Equal(t, int64(0), c.GetStatistics()["samplesIn"])

	second := c.Process(noise(100, 9))
	assert.Equal(t, first, second)
}

func TestConvolver_Accessors(t *testing.T) {
	coeffs := designTaps(t, filter.Lowpass, testOrder)
	c, err := NewConvolver[float64](coeffs, 2.0)
	require.NoError(t, err)

	assert.Equal(t, testOrder+1, c.Len())
	assert.Equal(t, testOrder, c.Order())
	assert.Equal(t, testOrder/2, c.Latency())
	assert.InDelta(t, 1.4, c.Gain(), 1e-12)

	taps := c.Coefficients()
	assert.Equal(t, coeffs, taps)
	taps[0] = 99
	assert.NotEqual(t, 99.0, c.Coefficients()[0], "Coefficients must return a copy")

	c.Process(make([]float64, 10))
	c.Flush()
	stats := c.GetStatistics()
	assert.Equal(t, int64(10), stats["samplesIn"])
	assert.Equal(t, int64(10+testOrder+1), stats["samplesOut"])
}

func TestNewConvolver_Errors(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		volume float64
	}{
		{"no_taps", nil, 1},
		{"too_many_taps", make([]float64, maxTaps+1), 1},
		{"zero_volume", []float64{1}, 0},
		{"negative_volume", []float64{1}, -1},
		{"nan_volume", []float64{1}, math.NaN()},
		{"nan_tap", []float64{0.5, math.NaN(), 0.5}, 1},
		{"inf_tap", []float64{math.Inf(1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConvolver[float64](tt.coeffs, tt.volume)
			require.ErrorIs(t, err, ErrInvalidTaps)
		})
	}
}

func BenchmarkConvolver_Order126(b *testing.B) {
	coeffs, err := filter.Design(filter.Params{
		Type:       filter.Lowpass,
		Window:     filter.WindowHamming,
		Order:      testOrder,
		Cutoff:     2000,
		SampleRate: testSampleRate,
	})
	require.NoError(b, err)

	c, err := NewConvolver[float64](coeffs, DefaultVolume)
	require.NoError(b, err)
	block := noise(1024, 1)

	b.ReportAllocs()
	for b.Loop() {
		c.ProcessInto(block, block)
	}
}
