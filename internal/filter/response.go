package filter

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/go-fir-filter/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse calculates the frequency response of a FIR filter
// at numPoints evenly spaced normalized frequencies k/(2·numPoints), k = 0..numPoints-1.
//
// The taps are zero-padded to a multiple of 2·numPoints that is at least as
// long as the filter and transformed with a real FFT, so the result equals
// the DTFT at those frequencies.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	// Oversample so the FFT is never shorter than the filter.
	base := nyquistDivisor * numPoints
	stride := (len(coeffs) + base - 1) / base
	if stride < 1 {
		stride = 1
	}
	fftSize := base * stride

	padded := make([]float64, fftSize)
	copy(padded, coeffs)

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, padded)

	for k := range numPoints {
		h := spectrum[k*stride]
		response.Frequencies[k] = float64(k) / float64(base)
		response.Magnitude[k] = cmplx.Abs(h)
		response.Phase[k] = cmplx.Phase(h)
	}

	return response
}

// ResponseAt evaluates the complex frequency response H(e^jω) of the taps at
// freqHz for the given sample rate by direct DTFT.
func ResponseAt(coeffs []float64, freqHz, sampleRate float64) complex128 {
	omega := twoPi * freqHz / sampleRate

	var realPart, imagPart float64
	for n, h := range coeffs {
		angle := omega * float64(n)
		realPart += h * math.Cos(angle)
		imagPart -= h * math.Sin(angle)
	}
	return complex(realPart, imagPart)
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}

// DCGain returns the response at 0 Hz, which is the sum of the taps.
func DCGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	return simdops.For[float64]().Sum(coeffs)
}

// GroupDelay returns the delay in samples of a linear-phase design of the
// given order.
func GroupDelay(order int) int {
	return order / centerDivisor
}
