package engine

// Output gain constants
const (
	// OutputScale is applied to every output sample to leave headroom for
	// the passband overshoot (Gibbs phenomenon) of windowed-sinc designs.
	OutputScale = 0.7

	// DefaultVolume is the user gain when none is requested.
	DefaultVolume = 1.0
)

// Tap count bounds. MaxTaps matches the largest design order (1000) plus one.
const (
	minTaps = 1
	maxTaps = 1001
)

// latencyDivisor gives the group delay of a symmetric filter: (taps-1)/2.
const latencyDivisor = 2
