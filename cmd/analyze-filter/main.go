// Command analyze-filter designs a FIR filter and prints its taps, DC gain
// and magnitude response.
//
// Usage:
//
//	analyze-filter -cutoff 1000
//	analyze-filter -type bandpass -cutoff 300 -upper 3400 -rate 8000 -taps
//	analyze-filter -estimate -atten 80 -tbw 200 -rate 48000
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"

	"github.com/tphakala/go-fir-filter/internal/filter"
	"github.com/tphakala/go-fir-filter/internal/mathutil"
)

const (
	// Analysis defaults
	defaultRate    = 44100.0
	defaultCutoff  = 1000.0
	defaultOrder   = 126
	defaultPoints  = 1024
	defaultAtten   = 60.0
	defaultTBWHz   = 500.0
	passbandLimit  = -3.0  // dB edge of the reported passband
	stopbandLimit  = -40.0 // dB edge of the reported stopband
	numProbeScales = 5
)

// probeScales are the cutoff multiples at which the response is printed.
var probeScales = [numProbeScales]float64{0.25, 0.5, 1, 2, 4}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("analyze-filter", flag.ContinueOnError)
	typeName := fs.String("type", "lowpass", "Filter type: lowpass, highpass, bandpass, bandstop")
	windowName := fs.String("window", "hamming", "Window function")
	order := fs.Int("order", defaultOrder, "Filter order (even)")
	cutoff := fs.Float64("cutoff", defaultCutoff, "Cutoff in Hz (lower edge for band filters)")
	upper := fs.Float64("upper", 0, "Upper cutoff in Hz for band filters")
	rate := fs.Float64("rate", defaultRate, "Sample rate in Hz")
	beta := fs.Float64("beta", 0, "Kaiser beta")
	points := fs.Int("points", defaultPoints, "Frequency response points")
	showTaps := fs.Bool("taps", false, "Print every coefficient")
	estimate := fs.Bool("estimate", false, "Print the Kaiser order estimate and exit")
	atten := fs.Float64("atten", defaultAtten, "Stopband attenuation in dB for -estimate")
	tbw := fs.Float64("tbw", defaultTBWHz, "Transition bandwidth in Hz for -estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *estimate {
		n := mathutil.EstimateOrder(*atten, *tbw / *rate)
		fmt.Printf("Kaiser estimate for %.1f dB over %.1f Hz at %.0f Hz:\n", *atten, *tbw, *rate)
		fmt.Printf("  Order: %d (%d taps)\n", n, n+1)
		fmt.Printf("  Beta:  %.4f\n", mathutil.KaiserBeta(*atten))
		return nil
	}

	ft, err := filter.ParseType(*typeName)
	if err != nil {
		return err
	}
	wt, err := filter.ParseWindowType(*windowName)
	if err != nil {
		return err
	}

	params := filter.Params{
		Type:        ft,
		Window:      wt,
		Order:       *order,
		Cutoff:      *cutoff,
		UpperCutoff: *upper,
		SampleRate:  *rate,
		Beta:        *beta,
	}
	coeffs, err := filter.Design(params)
	if err != nil {
		return err
	}

	fmt.Println("=== Analyzing FIR Filter ===")
	fmt.Printf("  Type:        %s\n", ft)
	fmt.Printf("  Window:      %s\n", wt)
	fmt.Printf("  Order:       %d (%d taps)\n", *order, len(coeffs))
	fmt.Printf("  Group delay: %d samples (%.3f ms)\n",
		filter.GroupDelay(*order), float64(filter.GroupDelay(*order))*1000 / *rate)
	fmt.Printf("  DC gain:     %.10f (%.2f dB)\n",
		filter.DCGain(coeffs), filter.MagnitudeDB(math.Abs(filter.DCGain(coeffs))))
	fmt.Printf("  Center tap:  %.10f\n", coeffs[*order/2])
	if wt == filter.WindowKaiser {
		shape, atten := kaiserStopband(*beta)
		fmt.Printf("  Kaiser beta: %.4f (~%.1f dB stopband)\n", shape, atten)
	}

	if *showTaps {
		fmt.Println("\nCoefficients:")
		for i, c := range coeffs {
			fmt.Printf("  h[%4d] = % .12f\n", i, c)
		}
	}

	fmt.Println("\nMagnitude at cutoff multiples:")
	for _, s := range probeScales {
		f := *cutoff * s
		if f >= *rate/2 {
			continue
		}
		h := filter.ResponseAt(coeffs, f, *rate)
		fmt.Printf("  %9.1f Hz: %8.2f dB\n", f, filter.MagnitudeDB(cmplx.Abs(h)))
	}

	summarize(filter.ComputeFrequencyResponse(coeffs, *points), *rate)
	return nil
}

// kaiserStopband returns the β used for a Kaiser design and the stopband
// attenuation it reaches.
func kaiserStopband(beta float64) (shape, attenuation float64) {
	shape = filter.KaiserShape(beta)
	return shape, mathutil.KaiserAttenuation(shape)
}

// summarize prints the extent of the passband and the worst stopband level.
func summarize(resp filter.FilterResponse, rate float64) {
	var passBins, stopBins int
	worstStop := math.Inf(-1)
	minPass, maxPass := math.Inf(1), math.Inf(-1)

	for _, m := range resp.Magnitude {
		db := filter.MagnitudeDB(m)
		switch {
		case db >= passbandLimit:
			passBins++
			minPass = math.Min(minPass, db)
			maxPass = math.Max(maxPass, db)
		case db <= stopbandLimit:
			stopBins++
			worstStop = math.Max(worstStop, db)
		}
	}

	binHz := rate / 2 / float64(len(resp.Magnitude))
	fmt.Printf("\nResponse over %d bins (%.1f Hz each):\n", len(resp.Magnitude), binHz)
	if passBins > 0 {
		fmt.Printf("  Passband (>= %.0f dB): %.1f Hz, ripple %.4f dB\n",
			passbandLimit, float64(passBins)*binHz, maxPass-minPass)
	}
	if stopBins > 0 {
		fmt.Printf("  Stopband (<= %.0f dB): %.1f Hz, peak %.2f dB\n",
			stopbandLimit, float64(stopBins)*binHz, worstStop)
	}
}
