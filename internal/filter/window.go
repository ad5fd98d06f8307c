package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-fir-filter/internal/mathutil"
)

// WindowType selects the taper applied to the ideal impulse response.
type WindowType int

const (
	// WindowHamming is the Hamming window (default).
	WindowHamming WindowType = iota
	// WindowHanning is the Hann window.
	WindowHanning
	// WindowBartlett is the triangular window.
	WindowBartlett
	// WindowBlackman is the three-term Blackman window.
	WindowBlackman
	// WindowRectangular applies no taper.
	WindowRectangular
	// WindowKaiser is the Kaiser-Bessel window; its shape is set by β.
	WindowKaiser
)

var windowNames = map[WindowType]string{
	WindowHamming:     "hamming",
	WindowHanning:     "hanning",
	WindowBartlett:    "bartlett",
	WindowBlackman:    "blackman",
	WindowRectangular: "rectangular",
	WindowKaiser:      "kaiser",
}

// String returns the lower-case window name.
func (w WindowType) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("window(%d)", int(w))
}

// Valid reports whether w is a known window.
func (w WindowType) Valid() bool {
	_, ok := windowNames[w]
	return ok
}

// ParseWindowType maps a window name to its WindowType. "hann" is accepted
// as an alias for "hanning".
func ParseWindowType(s string) (WindowType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "hann" {
		return WindowHanning, nil
	}
	for w, n := range windowNames {
		if n == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unrecognised window type %q", s)
}

// WindowValue evaluates window w at tap x of an order-N design (x in 0..N).
// beta is only used by WindowKaiser.
//
// The cosine windows are evaluated at the distance d = |x - N/2| from the
// center, using cos(2πx/N) = -cos(2πd/N) and cos(4πx/N) = cos(4πd/N), so
// taps x and N-x get bit-identical values.
func WindowValue(w WindowType, x, order int, beta float64) float64 {
	n := float64(order)
	fx := float64(x)
	d := math.Abs(fx - n/centerDivisor)

	switch w {
	case WindowHamming:
		return hammingA0 + hammingA1*math.Cos(twoPi*d/n)
	case WindowHanning:
		return hanningA0 + hanningA1*math.Cos(twoPi*d/n)
	case WindowBartlett:
		return 1 - bartlettSlope*d/n
	case WindowBlackman:
		return blackmanA0 + blackmanA1*math.Cos(twoPi*d/n) + blackmanA2*math.Cos(fourPi*d/n)
	case WindowRectangular:
		return 1
	case WindowKaiser:
		return kaiserValue(fx, n, beta)
	default:
		return math.NaN()
	}
}

// Window returns all N+1 values of window w for an order-N design.
func Window(w WindowType, order int, beta float64) []float64 {
	if order < 1 {
		return []float64{}
	}

	window := make([]float64, order+1)
	for x := range window {
		window[x] = WindowValue(w, x, order, beta)
	}
	return window
}

// KaiserShape returns the β the Kaiser window actually uses: beta itself, or
// the β for a 60 dB design when beta is zero.
func KaiserShape(beta float64) float64 {
	if beta == 0 {
		return mathutil.KaiserBeta(defaultKaiserAttenuation)
	}
	return beta
}

// kaiserValue evaluates the Kaiser window:
//
//	w[x] = I₀(β·sqrt(1 - ((x - α)/α)²)) / I₀(β),  α = N/2
func kaiserValue(x, n, beta float64) float64 {
	beta = KaiserShape(beta)

	alpha := n / centerDivisor
	r := (x - alpha) / alpha
	arg := beta * math.Sqrt(math.Max(0, 1.0-r*r))

	return mathutil.BesselI0(arg) / mathutil.BesselI0(beta)
}
