package firfilter

import (
	"github.com/tphakala/go-fir-filter/internal/engine"
	"github.com/tphakala/go-fir-filter/internal/mathutil"
)

// Filter order limits and defaults.
const (
	// MinOrder is the smallest supported filter order.
	MinOrder = mathutil.MinOrder

	// MaxOrder is the largest supported filter order.
	MaxOrder = mathutil.MaxOrder

	// DefaultOrder is the order used when none is given (127 taps).
	DefaultOrder = 126
)

// Output gain.
const (
	// OutputScale is the fixed post-gain applied to every output sample to
	// keep windowed-sinc overshoot from clipping.
	OutputScale = engine.OutputScale

	// DefaultVolume is the user gain when Config.Volume is zero.
	DefaultVolume = engine.DefaultVolume

	// MaxVolume is the exclusive upper bound for Config.Volume.
	MaxVolume = 5.0
)

// Streaming defaults.
const (
	// DefaultBlockSize is the number of samples read from a source per call.
	DefaultBlockSize = 1024
)

// Common sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000
)
