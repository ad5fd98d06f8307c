// Package wavio reads and writes mono PCM WAV files as normalised float
// samples using go-audio/wav.
package wavio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFile is returned when the input is not a readable WAV file.
	ErrInvalidFile = errors.New("invalid WAV file")

	// ErrNotMono is returned when the input has more than one channel.
	ErrNotMono = errors.New("WAV file is not mono")

	// ErrUnsupportedFormat is returned for non-PCM data or bit depths other
	// than 16, 24 or 32.
	ErrUnsupportedFormat = errors.New("unsupported WAV format")
)

// fullScale returns the largest sample value for the given bit depth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
}

// clip limits a sample to [-1, 1].
func clip(v float64) float64 {
	if v > 1.0 {
		return 1.0
	} else if v < -1.0 {
		return -1.0
	}
	return v
}
