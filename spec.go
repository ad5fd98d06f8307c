package firfilter

import (
	"fmt"

	"github.com/tphakala/go-fir-filter/internal/filter"
)

// FilterType selects the filter family.
type FilterType = filter.Type

// Filter families.
const (
	// Lowpass passes frequencies below Cutoff.
	Lowpass = filter.Lowpass

	// Highpass passes frequencies above Cutoff.
	Highpass = filter.Highpass

	// Bandpass passes frequencies between Cutoff and UpperCutoff.
	Bandpass = filter.Bandpass

	// Bandstop rejects frequencies between Cutoff and UpperCutoff.
	Bandstop = filter.Bandstop
)

// WindowType selects the taper applied to the ideal impulse response.
type WindowType = filter.WindowType

// Window functions.
const (
	Hamming     = filter.WindowHamming
	Hanning     = filter.WindowHanning
	Bartlett    = filter.WindowBartlett
	Blackman    = filter.WindowBlackman
	Rectangular = filter.WindowRectangular

	// Kaiser uses FilterSpec.Beta as its shape parameter.
	Kaiser = filter.WindowKaiser
)

// ParseFilterType parses a filter family name such as "lowpass".
func ParseFilterType(s string) (FilterType, error) {
	t, err := filter.ParseType(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return t, nil
}

// ParseWindowType parses a window name such as "hamming".
func ParseWindowType(s string) (WindowType, error) {
	w, err := filter.ParseWindowType(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return w, nil
}

// FilterSpec describes a filter design. It is a plain value; pass it
// explicitly to Design or New.
type FilterSpec struct {
	// Type is the filter family.
	Type FilterType

	// Window is the window function.
	Window WindowType

	// Order is the filter order N. It must be even and within
	// [MinOrder, MaxOrder]. The filter has N+1 taps.
	Order int

	// Cutoff is the cutoff frequency in Hz, or the lower band edge for
	// Bandpass and Bandstop.
	Cutoff float64

	// UpperCutoff is the upper band edge in Hz. Required for band filters.
	UpperCutoff float64

	// SampleRate is the stream sample rate in Hz.
	SampleRate float64

	// Beta is the Kaiser window shape. Zero selects a shape for roughly
	// 60 dB of stopband attenuation. Ignored by the other windows.
	Beta float64
}

// DefaultSpec returns a lowpass Hamming design of DefaultOrder at the
// given cutoff and sample rate.
func DefaultSpec(cutoff, sampleRate float64) FilterSpec {
	return FilterSpec{
		Type:       Lowpass,
		Window:     Hamming,
		Order:      DefaultOrder,
		Cutoff:     cutoff,
		SampleRate: sampleRate,
	}
}

// Taps returns the number of filter coefficients (Order + 1).
func (s FilterSpec) Taps() int {
	return s.Order + 1
}

// Validate reports whether the design parameters are usable. The returned error
// wraps ErrConfig.
func (s FilterSpec) Validate() error {
	p := s.params()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

func (s FilterSpec) params() filter.Params {
	return filter.Params{
		Type:        s.Type,
		Window:      s.Window,
		Order:       s.Order,
		Cutoff:      s.Cutoff,
		UpperCutoff: s.UpperCutoff,
		SampleRate:  s.SampleRate,
		Beta:        s.Beta,
	}
}

// Design computes the Order+1 filter coefficients for spec using the
// windowed-sinc method. The result is symmetric about tap Order/2.
func Design(spec FilterSpec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	coeffs, err := filter.Design(spec.params())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return coeffs, nil
}

// Config holds everything needed to build a Filter.
type Config struct {
	// Spec is the filter design.
	Spec FilterSpec

	// Volume is a user gain applied on top of OutputScale. Zero selects
	// DefaultVolume. Must be in (0, MaxVolume).
	Volume float64
}

// Validate checks the configuration. Errors wrap ErrConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrConfig)
	}
	if err := c.Spec.Validate(); err != nil {
		return err
	}
	if v := c.volume(); !(v > 0 && v < MaxVolume) {
		return fmt.Errorf("%w: volume must be in (0, %g), got %g", ErrConfig, MaxVolume, c.Volume)
	}
	return nil
}

func (c *Config) volume() float64 {
	if c.Volume == 0 {
		return DefaultVolume
	}
	return c.Volume
}
