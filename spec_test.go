package firfilter

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fir-filter/internal/testutil"
)

func TestDesign_Properties(t *testing.T) {
	types := []FilterType{Lowpass, Highpass, Bandpass, Bandstop}
	windows := []WindowType{Hamming, Hanning, Bartlett, Blackman, Rectangular, Kaiser}

	for _, ft := range types {
		for _, w := range windows {
			t.Run(ft.String()+"_"+w.String(), func(t *testing.T) {
				spec := FilterSpec{
					Type:        ft,
					Window:      w,
					Order:       64,
					Cutoff:      1000,
					UpperCutoff: 4000,
					SampleRate:  RateCD,
				}
				coeffs, err := Design(spec)
				require.NoError(t, err)
				assert.Len(t, coeffs, spec.Taps())
				testutil.AssertSymmetric(t, coeffs, 0, "taps")
				testutil.AssertNoNaNOrInf(t, coeffs, "taps")
			})
		}
	}
}

func TestDesign_LowpassDCGain(t *testing.T) {
	coeffs, err := Design(FilterSpec{
		Type:       Lowpass,
		Window:     Blackman,
		Order:      1000,
		Cutoff:     2000,
		SampleRate: RateDAT,
	})
	require.NoError(t, err)
	testutil.AssertDCGain(t, coeffs, 1.0, 0.01)
}

func TestFilterSpec_Validate(t *testing.T) {
	base := DefaultSpec(1000, RateCD)

	tests := []struct {
		name   string
		modify func(*FilterSpec)
	}{
		{"odd_order", func(s *FilterSpec) { s.Order = 127 }},
		{"order_too_small", func(s *FilterSpec) { s.Order = 0 }},
		{"order_too_large", func(s *FilterSpec) { s.Order = MaxOrder + 2 }},
		{"zero_cutoff", func(s *FilterSpec) { s.Cutoff = 0 }},
		{"cutoff_at_nyquist", func(s *FilterSpec) { s.Cutoff = RateCD / 2 }},
		{"zero_sample_rate", func(s *FilterSpec) { s.SampleRate = 0 }},
		{"negative_sample_rate", func(s *FilterSpec) { s.SampleRate = -8000 }},
		{"unknown_type", func(s *FilterSpec) { s.Type = FilterType(42) }},
		{"unknown_window", func(s *FilterSpec) { s.Window = WindowType(42) }},
		{"band_missing_upper", func(s *FilterSpec) { s.Type = Bandpass }},
		{"band_upper_below_lower", func(s *FilterSpec) {
			s.Type = Bandstop
			s.UpperCutoff = 500
		}},
		{"band_upper_at_nyquist", func(s *FilterSpec) {
			s.Type = Bandpass
			s.UpperCutoff = RateCD / 2
		}},
		{"negative_beta", func(s *FilterSpec) {
			s.Window = Kaiser
			s.Beta = -1
		}},
	}

	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			tt.modify(&spec)

			err := spec.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfig)

			_, err = Design(spec)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	spec := DefaultSpec(1000, RateCD)

	var nilConfig *Config
	assert.ErrorIs(t, nilConfig.Validate(), ErrConfig)

	assert.NoError(t, (&Config{Spec: spec}).Validate(), "zero volume selects the default")
	assert.NoError(t, (&Config{Spec: spec, Volume: 4.99}).Validate())

	for _, v := range []float64{-1, MaxVolume, 10, math.NaN(), math.Inf(1)} {
		err := (&Config{Spec: spec, Volume: v}).Validate()
		assert.ErrorIs(t, err, ErrConfig, "volume %g", v)
	}
}

func TestParseNames(t *testing.T) {
	ft, err := ParseFilterType("bandstop")
	require.NoError(t, err)
	assert.Equal(t, Bandstop, ft)

	w, err := ParseWindowType("blackman")
	require.NoError(t, err)
	assert.Equal(t, Blackman, w)

	_, err = ParseFilterType("comb")
	assert.ErrorIs(t, err, ErrConfig)

	_, err = ParseWindowType("gaussian")
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestDefaultSpec(t *testing.T) {
	spec := DefaultSpec(3000, RateDAT)
	assert.Equal(t, Lowpass, spec.Type)
	assert.Equal(t, Hamming, spec.Window)
	assert.Equal(t, DefaultOrder, spec.Order)
	assert.Equal(t, 127, spec.Taps())
}
