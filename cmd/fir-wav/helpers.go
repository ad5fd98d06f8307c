package main

import (
	"github.com/sirupsen/logrus"

	firfilter "github.com/tphakala/go-fir-filter"
	"github.com/tphakala/go-fir-filter/internal/wavio"
)

// filterStats summarises one file.
type filterStats struct {
	sampleRate    int
	bitDepth      int
	inputSamples  int64
	outputSamples int64
}

// openWAVInput opens and validates a mono WAV file.
func openWAVInput[F firfilter.Float](path string, log *logrus.Logger) (*wavio.Reader[F], error) {
	r, err := wavio.Open[F](path)
	if err != nil {
		return nil, &firfilter.IOError{Op: "open", Path: path, Err: err}
	}

	log.WithFields(logrus.Fields{
		"path":        path,
		"sample_rate": r.SampleRate(),
		"bit_depth":   r.BitDepth(),
		"frames":      r.Frames(),
	}).Debug("Input format")

	return r, nil
}

// createWAVOutput creates the output file with the input's format.
func createWAVOutput[F firfilter.Float](path string, sampleRate, bitDepth int) (*wavio.Writer[F], error) {
	w, err := wavio.Create[F](path, sampleRate, bitDepth)
	if err != nil {
		return nil, &firfilter.IOError{Op: "create", Path: path, Err: err}
	}
	return w, nil
}

// newFilter builds the filter for the input's sample rate.
func newFilter[F firfilter.Float](opts *options, sampleRate int) (*firfilter.Filter[F], error) {
	return firfilter.New[F](&firfilter.Config{
		Spec: firfilter.FilterSpec{
			Type:        opts.filterType,
			Window:      opts.window,
			Order:       opts.order,
			Cutoff:      opts.cutoff,
			UpperCutoff: opts.upper,
			SampleRate:  float64(sampleRate),
			Beta:        opts.beta,
		},
		Volume: opts.volume,
	})
}

// filterWAV filters opts.inputPath into opts.outputPath at precision F.
func filterWAV[F firfilter.Float](opts *options, log *logrus.Logger) (stats *filterStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput[F](opts.inputPath, log)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Design the filter before touching the output
	f, err := newFilter[F](opts, input.SampleRate())
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"taps":    f.Len(),
		"latency": f.Latency(),
		"gain":    f.Gain(),
	}).Debug("Filter designed")

	// 3. Create output writer
	output, err := createWAVOutput[F](opts.outputPath, input.SampleRate(), input.BitDepth())
	if err != nil {
		return nil, err
	}
	// Close errors matter: the WAV header is finalised on close
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = &firfilter.IOError{Op: "close", Path: opts.outputPath, Err: closeErr}
		}
	}()

	// 4. Stream
	sink := newProgressSink[F](output, input.Frames()+int64(f.Len()), log)
	runStats, err := firfilter.Run(f, input, sink, opts.blockSize)
	if err != nil {
		return nil, err
	}

	return &filterStats{
		sampleRate:    input.SampleRate(),
		bitDepth:      input.BitDepth(),
		inputSamples:  runStats.SamplesRead,
		outputSamples: runStats.SamplesWritten,
	}, nil
}

// progressSink forwards to a WAV writer and logs progress at debug level.
type progressSink[F firfilter.Float] struct {
	out          *wavio.Writer[F]
	log          *logrus.Logger
	totalSamples int64
	written      int64
	lastProgress int
}

func newProgressSink[F firfilter.Float](out *wavio.Writer[F], totalSamples int64, log *logrus.Logger) *progressSink[F] {
	return &progressSink[F]{
		out:          out,
		log:          log,
		totalSamples: totalSamples,
	}
}

// Write implements firfilter.Sink.
func (p *progressSink[F]) Write(src []F) (int, error) {
	n, err := p.out.Write(src)
	p.written += int64(n)
	p.reportIfNeeded()
	return n, err
}

// Name reports the output path in I/O errors.
func (p *progressSink[F]) Name() string {
	return p.out.Name()
}

// reportIfNeeded logs progress if a threshold was crossed.
func (p *progressSink[F]) reportIfNeeded() {
	if p.totalSamples <= 0 || !p.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	progress := int(float64(p.written) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressPercent {
		p.log.WithField("percent", progress).Debug("Progress")
		p.lastProgress = progress
	}
}
