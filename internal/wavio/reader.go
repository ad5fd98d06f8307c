package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-fir-filter/internal/simdops"
)

// Reader streams samples from a mono PCM WAV file, normalised to [-1, 1].
type Reader[F simdops.Float] struct {
	path      string
	file      *os.File
	decoder   *wav.Decoder
	intBuf    *audio.IntBuffer
	invMaxVal float64

	sampleRate int
	bitDepth   int
	frames     int64
}

// Open opens and validates a WAV file for reading.
func Open[F simdops.Float](path string) (*Reader[F], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := newReader[F](file, path)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}

func newReader[F simdops.Float](file *os.File, path string) (*Reader[F], error) {
	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	if decoder.NumChans != monoChannels {
		return nil, fmt.Errorf("%w: %d channels", ErrNotMono, decoder.NumChans)
	}
	if decoder.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, decoder.WavAudioFormat)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	// PCMLen is the data chunk size in bytes
	frames := decoder.PCMLen() / int64(bitDepth/8)

	return &Reader[F]{
		path:    path,
		file:    file,
		decoder: decoder,
		intBuf: &audio.IntBuffer{
			Data:           make([]int, defaultBufferFrames),
			Format:         decoder.Format(),
			SourceBitDepth: bitDepth,
		},
		invMaxVal:  1.0 / maxVal,
		sampleRate: int(decoder.SampleRate),
		bitDepth:   bitDepth,
		frames:     frames,
	}, nil
}

// Read fills dst with normalised samples. It returns fewer than len(dst)
// samples only at the end of the data chunk, and io.EOF once nothing is
// left.
func (r *Reader[F]) Read(dst []F) (int, error) {
	if cap(r.intBuf.Data) < len(dst) {
		r.intBuf.Data = make([]int, len(dst))
	}

	total := 0
	for total < len(dst) {
		r.intBuf.Data = r.intBuf.Data[:len(dst)-total]
		n, err := r.decoder.PCMBuffer(r.intBuf)
		for i, v := range r.intBuf.Data[:n] {
			dst[total+i] = F(float64(v) * r.invMaxVal)
		}
		total += n

		if err != nil && !errors.Is(err, io.EOF) {
			return total, err
		}
		if n == 0 || err != nil {
			break
		}
	}

	if total == 0 && len(dst) > 0 {
		return 0, io.EOF
	}
	return total, nil
}

// Name returns the path the reader was opened with.
func (r *Reader[F]) Name() string {
	return r.path
}

// SampleRate returns the sample rate in Hz.
func (r *Reader[F]) SampleRate() int {
	return r.sampleRate
}

// BitDepth returns the PCM sample size in bits.
func (r *Reader[F]) BitDepth() int {
	return r.bitDepth
}

// Frames returns the number of frames in the data chunk.
func (r *Reader[F]) Frames() int64 {
	return r.frames
}

// Close closes the underlying file.
func (r *Reader[F]) Close() error {
	return r.file.Close()
}
