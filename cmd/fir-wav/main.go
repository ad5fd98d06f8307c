// Command fir-wav filters a mono WAV file with a windowed-sinc FIR filter.
//
// Usage:
//
//	fir-wav input.wav output.wav 1000                                 # 1 kHz lowpass
//	fir-wav -type highpass -window blackman in.wav out.wav 300
//	fir-wav -type bandpass -upper 3400 -order 256 in.wav out.wav 300
//	fir-wav -window kaiser -beta 8.6 -fast in.wav out.wav 4000        # float32 precision
//
// The output has the input's sample rate and bit depth, and order+1 more
// samples than the input: the filter tail drained at end of stream.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	firfilter "github.com/tphakala/go-fir-filter"
)

const (
	// CLI defaults
	defaultWindow   = "hamming"
	defaultType     = "lowpass"
	requiredArgs    = 3
	progressPercent = 10 // Log progress every N%
	percentScale    = 100

	// Exit codes per error class
	exitUsage      = 2
	exitConfig     = 3
	exitAllocation = 4
	exitIO         = 5
)

// options holds the parsed command line.
type options struct {
	inputPath  string
	outputPath string
	filterType firfilter.FilterType
	window     firfilter.WindowType
	order      int
	cutoff     float64
	upper      float64
	beta       float64
	volume     float64
	blockSize  int
	fast       bool
	verbose    bool
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.WithError(err).Error("Invalid arguments")
		}
		os.Exit(exitUsage)
	}
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(opts, log); err != nil {
		log.WithFields(logrus.Fields{
			"input":  opts.inputPath,
			"output": opts.outputPath,
		}).WithError(err).Error("Filtering failed")
		os.Exit(exitCode(err))
	}
}

// parseArgs parses flags and the three positional arguments.
func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("fir-wav", flag.ContinueOnError)
	filterType := fs.String("type", defaultType, "Filter type: lowpass, highpass, bandpass, bandstop")
	upper := fs.Float64("upper", 0, "Upper cutoff in Hz (bandpass and bandstop)")
	order := fs.Int("order", firfilter.DefaultOrder, "Filter order, even, 2-1000")
	window := fs.String("window", defaultWindow, "Window: hamming, hanning, bartlett, blackman, rectangular, kaiser")
	beta := fs.Float64("beta", 0, "Kaiser window beta (0 selects a 60 dB design)")
	volume := fs.Float64("volume", firfilter.DefaultVolume, "Output volume, 0 < volume < 5")
	blockSize := fs.Int("block", firfilter.DefaultBlockSize, "Samples per processing block")
	fast := fs.Bool("fast", false, "Use float32 precision")
	verbose := fs.Bool("v", false, "Verbose output")
	cpuprofile := fs.String("cpuprofile", "", "Write CPU profile to file (for PGO)")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: fir-wav [options] input.wav output.wav cutoff\n\n")
		_, _ = fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(out, "\nExamples:\n")
		_, _ = fmt.Fprintf(out, "  fir-wav in.wav out.wav 1000                                # Lowpass at 1 kHz\n")
		_, _ = fmt.Fprintf(out, "  fir-wav -type highpass in.wav out.wav 80                   # Remove rumble\n")
		_, _ = fmt.Fprintf(out, "  fir-wav -type bandpass -upper 3400 in.wav out.wav 300      # Telephone band\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != requiredArgs {
		fs.Usage()
		return nil, fmt.Errorf("expected %d arguments, got %d", requiredArgs, len(rest))
	}

	cutoff, err := strconv.ParseFloat(rest[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cutoff %q is not a number", firfilter.ErrConfig, rest[2])
	}

	ft, err := firfilter.ParseFilterType(*filterType)
	if err != nil {
		return nil, err
	}
	wt, err := firfilter.ParseWindowType(*window)
	if err != nil {
		return nil, err
	}

	// A zero Config.Volume means "default"; on the command line it is an error.
	if !(*volume > 0 && *volume < firfilter.MaxVolume) {
		return nil, fmt.Errorf("%w: volume must be in (0, %g), got %g", firfilter.ErrConfig, firfilter.MaxVolume, *volume)
	}

	if *cpuprofile != "" {
		if err := startProfile(*cpuprofile); err != nil {
			return nil, err
		}
	}

	return &options{
		inputPath:  rest[0],
		outputPath: rest[1],
		filterType: ft,
		window:     wt,
		order:      *order,
		cutoff:     cutoff,
		upper:      *upper,
		beta:       *beta,
		volume:     *volume,
		blockSize:  *blockSize,
		fast:       *fast,
		verbose:    *verbose,
	}, nil
}

var stopProfile = func() {}

func startProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	stopProfile = func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
	return nil
}

func run(opts *options, log *logrus.Logger) error {
	defer stopProfile()

	log.WithFields(logrus.Fields{
		"input":  opts.inputPath,
		"output": opts.outputPath,
		"type":   opts.filterType.String(),
		"window": opts.window.String(),
		"order":  opts.order,
		"cutoff": opts.cutoff,
		"fast":   opts.fast,
	}).Debug("Starting filter")

	start := time.Now()
	var stats *filterStats
	var err error
	if opts.fast {
		stats, err = filterWAV[float32](opts, log)
	} else {
		stats, err = filterWAV[float64](opts, log)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	fmt.Printf("Filtered %s -> %s\n", filepath.Base(opts.inputPath), filepath.Base(opts.outputPath))
	fmt.Printf("  %s %s, order %d, %d Hz, %d-bit\n",
		opts.filterType, opts.window, opts.order, stats.sampleRate, stats.bitDepth)
	fmt.Printf("  %d samples -> %d samples (%d tail)\n",
		stats.inputSamples, stats.outputSamples, stats.outputSamples-stats.inputSamples)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.inputSamples)/float64(stats.sampleRate)/elapsed.Seconds())

	return nil
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, firfilter.ErrConfig):
		return exitConfig
	case errors.Is(err, firfilter.ErrAllocation):
		return exitAllocation
	default:
		return exitIO
	}
}
