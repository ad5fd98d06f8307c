// Package filter designs linear-phase FIR filters with the windowed-sinc method.
package filter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-fir-filter/internal/mathutil"
)

// Type is the filter family.
type Type int

const (
	// Lowpass passes frequencies below Cutoff.
	Lowpass Type = iota
	// Highpass passes frequencies above Cutoff.
	Highpass
	// Bandpass passes frequencies between Cutoff and UpperCutoff.
	Bandpass
	// Bandstop rejects frequencies between Cutoff and UpperCutoff.
	Bandstop
)

var typeNames = map[Type]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Bandstop: "bandstop",
}

// String returns the lower-case filter type name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Valid reports whether t is a known filter family.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// IsBand reports whether the family needs an upper cutoff.
func (t Type) IsBand() bool {
	return t == Bandpass || t == Bandstop
}

// ParseType maps a filter family name to its Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unrecognised filter type %q", s)
}

// ErrInvalidParams is wrapped by every validation failure from Params.Validate.
var ErrInvalidParams = errors.New("invalid filter parameters")

// Params holds parameters for filter design.
type Params struct {
	// Type is the filter family.
	Type Type

	// Window is the taper applied to the ideal response.
	Window WindowType

	// Order is the filter order N. The design has N+1 taps.
	// Must be even and within [mathutil.MinOrder, mathutil.MaxOrder].
	Order int

	// Cutoff is the (lower) cutoff frequency in Hz.
	Cutoff float64

	// UpperCutoff is the upper cutoff in Hz for band filters; ignored otherwise.
	UpperCutoff float64

	// SampleRate is the sampling rate in Hz.
	SampleRate float64

	// Beta is the Kaiser window shape. Zero selects a 60 dB design.
	Beta float64
}

// Validate checks if filter parameters are valid.
func (p *Params) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unrecognised filter type %d", ErrInvalidParams, int(p.Type))
	}

	if !p.Window.Valid() {
		return fmt.Errorf("%w: unrecognised window type %d", ErrInvalidParams, int(p.Window))
	}

	if p.Order < mathutil.MinOrder || p.Order > mathutil.MaxOrder || p.Order%2 != 0 {
		return fmt.Errorf("%w: filter order must be an even integer between %d and %d, got %d",
			ErrInvalidParams, mathutil.MinOrder, mathutil.MaxOrder, p.Order)
	}

	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidParams, p.SampleRate)
	}

	nyquist := p.SampleRate / nyquistDivisor
	if !(p.Cutoff > 0 && p.Cutoff < nyquist) {
		return fmt.Errorf("%w: cutoff %g Hz must be in (0, %g)", ErrInvalidParams, p.Cutoff, nyquist)
	}

	if p.Type.IsBand() {
		if !(p.UpperCutoff > p.Cutoff && p.UpperCutoff < nyquist) {
			return fmt.Errorf("%w: upper cutoff %g Hz must be in (%g, %g) for %s",
				ErrInvalidParams, p.UpperCutoff, p.Cutoff, nyquist, p.Type)
		}
	}

	if p.Window == WindowKaiser && (p.Beta < 0 || math.IsNaN(p.Beta)) {
		return fmt.Errorf("%w: kaiser beta must be non-negative, got %g", ErrInvalidParams, p.Beta)
	}

	return nil
}

// Design computes the N+1 taps of the filter described by params:
//
//	h[x] = window(x) · ideal(x),  x = 0..N
//
// The ideal responses are centered on tap N/2, so every design is
// symmetric (linear phase) with a group delay of N/2 samples.
func Design(params Params) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Evaluate the first half and mirror it so h[x] == h[N-x] exactly.
	coeffs := make([]float64, params.Order+1)
	for x := 0; x <= params.Order/centerDivisor; x++ {
		h := WindowValue(params.Window, x, params.Order, params.Beta) *
			IdealResponse(params.Type, x, params.Order, params.Cutoff, params.UpperCutoff, params.SampleRate)
		coeffs[x] = h
		coeffs[params.Order-x] = h
	}

	return coeffs, nil
}

// IdealResponse evaluates the truncated ideal impulse response of family t at
// tap x of an order-N design.
//
// At the center tap the band formulas are 0/0; the limit is substituted
// exactly rather than evaluated near the singularity.
func IdealResponse(t Type, x, order int, f1, f2, fs float64) float64 {
	center := 2*x == order

	switch t {
	case Lowpass:
		return cutoffScale * f1 / fs * mathutil.Sinc(float64(2*x-order)*f1/fs)

	case Highpass:
		if center {
			return 1 - cutoffScale*f1/fs
		}
		return -cutoffScale * f1 / fs * mathutil.Sinc(float64(2*x-order)*f1/fs)

	case Bandpass:
		ft1, ft2 := f1/fs, f2/fs
		if center {
			return cutoffScale * (ft2 - ft1)
		}
		d := float64(x) - float64(order)/centerDivisor
		return bandTerm(ft2, d) - bandTerm(ft1, d)

	case Bandstop:
		ft1, ft2 := f1/fs, f2/fs
		if center {
			return 1 - cutoffScale*(ft2-ft1)
		}
		d := float64(x) - float64(order)/centerDivisor
		return bandTerm(ft1, d) - bandTerm(ft2, d)

	default:
		return math.NaN()
	}
}

// bandTerm is sin(2π·ft·d) / (π·d).
func bandTerm(ft, d float64) float64 {
	return math.Sin(twoPi*ft*d) / (math.Pi * d)
}
