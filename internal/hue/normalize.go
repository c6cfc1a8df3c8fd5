package hue

import "math"

// keyDigits is the fractional precision used for sample cache keys.
// Rounding to a fixed precision prevents two float representations of
// the same hue from occupying separate cache slots.
const keyDigits = 1e6

// Normalize maps any real hue onto the canonical range [0,360).
//
// Negative values and values of 360 or more wrap around the circle, so
// Normalize(-30) == 330 and Normalize(720) == 0. Non-finite input (NaN or
// ±Inf) maps to 0. The function is total and idempotent.
func Normalize(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	m := math.Mod(h, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// Key normalizes h and rounds it to six decimal digits, producing the
// canonical cache key for that hue.
func Key(h float64) float64 {
	k := math.Round(Normalize(h)*keyDigits) / keyDigits
	if k >= 360 {
		// Rounding can push a hue just below 360 back onto the seam.
		return 0
	}
	return k
}
