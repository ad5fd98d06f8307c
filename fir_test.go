package firfilter

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilter(t *testing.T, spec FilterSpec, volume float64) *Filter[float64] {
	t.Helper()
	f, err := New[float64](&Config{Spec: spec, Volume: volume})
	require.NoError(t, err)
	return f
}

func TestFilter_ImpulseReproducesScaledTaps(t *testing.T) {
	spec := FilterSpec{
		Type:        Bandpass,
		Window:      Hanning,
		Order:       32,
		Cutoff:      500,
		UpperCutoff: 2500,
		SampleRate:  RateVoIP,
	}
	const volume = 2.0
	f := newTestFilter(t, spec, volume)

	coeffs, err := Design(spec)
	require.NoError(t, err)

	input := make([]float64, f.Len())
	input[0] = 1
	output := append(f.Process(input), f.Flush()...)

	for k, h := range coeffs {
		assert.InDelta(t, OutputScale*volume*h, output[k], 1e-12, "tap %d", k)
	}
	for k := len(coeffs); k < len(output); k++ {
		assert.Zero(t, output[k], "sample %d after the impulse response", k)
	}
}

func TestFilter_Accessors(t *testing.T) {
	spec := DefaultSpec(1000, RateCD)
	f := newTestFilter(t, spec, 0)

	assert.Equal(t, 127, f.Len())
	assert.Equal(t, 126, f.Order())
	assert.Equal(t, 63, f.Latency())
	assert.InDelta(t, OutputScale*DefaultVolume, f.Gain(), 1e-12)
	assert.Equal(t, spec, f.Spec())

	coeffs := f.Coefficients()
	coeffs[0] = 99
	assert.NotEqual(t, 99.0, f.Coefficients()[0], "Coefficients must return a copy")
}

func TestFilter_FlushLengthAndReset(t *testing.T) {
	f := newTestFilter(t, DefaultSpec(4000, RateDAT), 1)

	input := make([]float64, 500)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * 440 * float64(i) / RateDAT)
	}

	first := append(f.Process(input), f.Flush()...)
	assert.Len(t, first, len(input)+f.Len())

	f.Reset()
	second := append(f.Process(input), f.Flush()...)
	assert.Equal(t, first, second, "Reset must restore the initial state")

	stats := f.GetStatistics()
	assert.Equal(t, int64(len(input)), stats["samplesIn"])
	assert.Equal(t, int64(len(input)+f.Len()), stats["samplesOut"])
}

func TestFilter_Float32(t *testing.T) {
	spec := DefaultSpec(2000, RateCD)
	f32, err := New[float32](&Config{Spec: spec})
	require.NoError(t, err)
	f64 := newTestFilter(t, spec, 0)

	rng := rand.New(rand.NewPCG(3, 5))
	in64 := make([]float64, 2048)
	in32 := make([]float32, len(in64))
	for i := range in64 {
		in32[i] = float32(rng.Float64()*2 - 1)
		in64[i] = float64(in32[i])
	}

	out64 := f64.Process(in64)
	out32 := f32.Process(in32)
	for i := range out64 {
		assert.InDelta(t, out64[i], float64(out32[i]), 1e-4, "sample %d", i)
	}
}

func TestNewFromCoefficients(t *testing.T) {
	f, err := NewFromCoefficients[float64]([]float64{0.25, 0.5, 0.25}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Order())
	assert.Equal(t, FilterSpec{}, f.Spec())

	out := f.Process([]float64{1, 0, 0, 0})
	assert.InDeltaSlice(t, []float64{0.175, 0.35, 0.175, 0}, out, 1e-12)

	_, err = NewFromCoefficients[float64](nil, 1)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = NewFromCoefficients[float64]([]float64{1, math.NaN()}, 1)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = NewFromCoefficients[float64](make([]float64, MaxOrder+2), 1)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New[float64](nil)
	assert.ErrorIs(t, err, ErrConfig)

	spec := DefaultSpec(1000, RateCD)
	spec.Order = 3
	_, err = New[float32](&Config{Spec: spec})
	assert.ErrorIs(t, err, ErrConfig)
	assert.NotErrorIs(t, err, ErrAllocation)
}

func BenchmarkFilter_Process(b *testing.B) {
	f, err := New[float32](&Config{Spec: DefaultSpec(1000, RateCD)})
	require.NoError(b, err)

	input := make([]float32, DefaultBlockSize)
	for i := range input {
		input[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / RateCD))
	}
	output := make([]float32, len(input))

	b.ResetTimer()
	for b.Loop() {
		f.ProcessInto(output, input)
	}
}
