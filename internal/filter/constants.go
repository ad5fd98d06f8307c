package filter

import "math"

const (
	// Hamming window: 0.54 - 0.46·cos(2πx/N)
	hammingA0 = 0.54
	hammingA1 = 0.46

	// Hanning (Hann) window: 0.5 - 0.5·cos(2πx/N)
	hanningA0 = 0.5
	hanningA1 = 0.5

	// Blackman window: 0.42 - 0.5·cos(2πx/N) + 0.08·cos(4πx/N)
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08

	// Bartlett window: 1 - 2·|x - N/2| / N
	bartlettSlope = 2.0

	// Kaiser β used when the caller leaves Beta at zero (≈60 dB stopband)
	defaultKaiserAttenuation = 60.0

	// Multipliers in the cosine window terms
	twoPi  = 2.0 * math.Pi
	fourPi = 4.0 * math.Pi

	// Ideal responses are defined on normalized frequency f/fs, doubled
	// for the lowpass/highpass amplitude 2·f/fs.
	cutoffScale = 2.0

	// Order divisor to locate the center tap
	centerDivisor = 2
)

// Frequency response defaults
const (
	defaultResponsePoints = 512
	nyquistDivisor        = 2

	minMagnitude = 1e-10 // Avoid log(0)
	dbMultiplier = 20.0  // 20*log10 for magnitude
)
