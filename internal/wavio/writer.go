package wavio

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-fir-filter/internal/simdops"
)

// Writer writes normalised samples to a mono PCM WAV file. Samples outside
// [-1, 1] are clipped.
type Writer[F simdops.Float] struct {
	path    string
	file    *os.File
	encoder *wav.Encoder
	intBuf  *audio.IntBuffer
	maxVal  float64
	frames  int64
}

// Create creates a WAV file with the given sample rate and bit depth.
func Create[F simdops.Float](path string, sampleRate, bitDepth int) (*Writer[F], error) {
	maxVal, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &Writer[F]{
		path:    path,
		file:    file,
		encoder: wav.NewEncoder(file, sampleRate, bitDepth, monoChannels, formatPCM),
		intBuf: &audio.IntBuffer{
			Data:           make([]int, 0, defaultBufferFrames),
			Format:         &audio.Format{SampleRate: sampleRate, NumChannels: monoChannels},
			SourceBitDepth: bitDepth,
		},
		maxVal: maxVal,
	}, nil
}

// Write encodes src. On success it returns len(src).
func (w *Writer[F]) Write(src []F) (int, error) {
	data := w.intBuf.Data[:0]
	for _, v := range src {
		data = append(data, int(math.Round(clip(float64(v))*w.maxVal)))
	}
	w.intBuf.Data = data

	if err := w.encoder.Write(w.intBuf); err != nil {
		return 0, err
	}
	w.frames += int64(len(src))
	return len(src), nil
}

// Name returns the path of the output file.
func (w *Writer[F]) Name() string {
	return w.path
}

// Frames returns the number of frames written so far.
func (w *Writer[F]) Frames() int64 {
	return w.frames
}

// Close finalises the WAV header and closes the file.
func (w *Writer[F]) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
