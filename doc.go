// Package firfilter provides a streaming FIR audio filter in pure Go.
//
// Coefficients are designed with the windowed-sinc method for lowpass,
// highpass, bandpass and bandstop responses, tapered by a Hamming, Hanning,
// Bartlett, Blackman, rectangular or Kaiser window. The filter then
// convolves a mono sample stream against those coefficients, one output per
// input, using a fixed history of Order+1 samples. At end of stream Flush
// feeds Order+1 zeros so the tail of the impulse response is emitted.
//
// # Features
//
//   - Even orders from 2 to 1000 (3 to 1001 taps)
//   - Linear phase designs with a group delay of Order/2 samples
//   - float32 and float64 processing from one generic implementation
//   - SIMD dot product via github.com/tphakala/simd
//   - Output independent of block size
//
// # Quick Start
//
// For one-shot filtering of a buffer:
//
//	spec := firfilter.FilterSpec{
//	    Type:       firfilter.Lowpass,
//	    Window:     firfilter.Hamming,
//	    Order:      126,
//	    Cutoff:     1000,
//	    SampleRate: 44100,
//	}
//	output, err := firfilter.FilterMono(input, spec, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For streaming with a reusable filter:
//
//	f, err := firfilter.New[float64](&firfilter.Config{Spec: spec})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for chunk := range audioChunks {
//	    writeOutput(f.Process(chunk))
//	}
//
//	// Drain the history
//	writeOutput(f.Flush())
//
// Run does the same against any Source and Sink:
//
//	stats, err := firfilter.Run(f, src, sink, firfilter.DefaultBlockSize)
//
// # Output Level
//
// Every output sample is scaled by OutputScale (0.7) times Config.Volume, so
// a unit impulse reproduces the coefficients multiplied by that gain.
//
// # Errors
//
// Errors wrap one of ErrConfig, ErrAllocation or ErrIO. Test with errors.Is.
// Source and sink failures are reported as *IOError naming the stage.
//
// # Thread Safety
//
// A Filter is not safe for concurrent use. Use one Filter per stream.
package firfilter
