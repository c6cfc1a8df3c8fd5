package hue

import "fmt"

// RGBValue holds an RGB color with 8-bit components alongside its
// human-readable form.
type RGBValue struct {
	Value string `json:"value"` // e.g. "rgb(255, 99, 71)"
	R     int    `json:"r"`     // Red component (0-255)
	G     int    `json:"g"`     // Green component (0-255)
	B     int    `json:"b"`     // Blue component (0-255)
}

// HSLValue holds an HSL color alongside its human-readable form.
type HSLValue struct {
	Value string  `json:"value"` // e.g. "hsl(9, 100%, 64%)"
	H     float64 `json:"h"`     // Hue: 0-360 degrees
	S     float64 `json:"s"`     // Saturation: 0-100 percent
	L     float64 `json:"l"`     // Lightness: 0-100 percent
}

// ColorDescriptor is the oracle's answer for a single sampled hue: the
// closest color name plus the color value in RGB and HSL form.
//
// Descriptors are immutable once produced. Two descriptors are the same
// color exactly when their values are equal; pointer identity carries no
// meaning.
type ColorDescriptor struct {
	Name string   `json:"name"`
	RGB  RGBValue `json:"rgb"`
	HSL  HSLValue `json:"hsl"`
}

// HueSegment is a contiguous arc of the hue wheel that maps to a single
// color name. It represents the half-open interval [StartHue, EndHue) on
// the circle, taken mod 360.
//
// StartHue < EndHue always holds. EndHue may exceed 360 to express a
// segment crossing the 0 degree seam, e.g. {350, 380} for 350..20.
type HueSegment struct {
	StartHue float64          `json:"startHue"`
	EndHue   float64          `json:"endHue"`
	Color    *ColorDescriptor `json:"color"`
}

// Span returns the angular width of the segment in degrees, accounting
// for wrap-around.
func (s HueSegment) Span() float64 {
	if s.EndHue >= s.StartHue {
		return s.EndHue - s.StartHue
	}
	return s.EndHue + 360 - s.StartHue
}

// Contains reports whether the normalized hue h falls inside the segment.
func (s HueSegment) Contains(h float64) bool {
	h = Normalize(h)
	if h >= s.StartHue && h < s.EndHue {
		return true
	}
	// Wrap segments also cover the low end of the circle.
	return s.EndHue > 360 && h < s.EndHue-360
}

// OracleError reports a failed oracle lookup for a specific hue. It wraps
// the underlying cause and is the only error kind the segmentation core
// produces.
type OracleError struct {
	Hue float64
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle lookup for hue %g failed: %v", e.Hue, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }
