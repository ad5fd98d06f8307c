package mathutil

import "math"

// Sinc is the normalized sinc function sin(πx)/(πx), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Mod wraps value into [0, max). Unlike Go's % operator it never returns a
// negative result, so Mod(-1, 5) == 4. max must be positive.
func Mod(value, max int) int {
	return ((value % max) + max) % max
}
