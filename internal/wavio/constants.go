package wavio

const (
	// Supported PCM sample sizes
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values for normalisation
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV format tag for integer PCM
	formatPCM = 1

	monoChannels = 1

	// Initial size of the conversion buffer in frames; it grows on demand.
	defaultBufferFrames = 4096
)
