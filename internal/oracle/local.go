package oracle

import (
	"context"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/hueforge/hue-wheel-mcp/internal/hue"
)

// Local is an offline color-naming oracle backed by the built-in table.
//
// A lookup converts the queried (h, s, l) to sRGB and picks the table
// entry with the smallest CIE-Lab distance. Lab is used rather than RGB
// distance because it tracks perceived color difference, which is what a
// naming dataset encodes.
//
// Local lookups never fail and are pure functions of their input, so the
// type also doubles as a deterministic fixture for tests that need a
// realistic many-segment hue space.
type Local struct {
	entries []NamedColor
	lab     [][3]float64
}

// NewLocal creates a Local oracle over the built-in naming table.
func NewLocal() *Local {
	return newLocalWithTable(namedColors)
}

func newLocalWithTable(entries []NamedColor) *Local {
	o := &Local{entries: entries, lab: make([][3]float64, len(entries))}
	for i, e := range entries {
		c := colorful.Color{
			R: float64(e.R) / 255,
			G: float64(e.G) / 255,
			B: float64(e.B) / 255,
		}
		l, a, b := c.Lab()
		o.lab[i] = [3]float64{l, a, b}
	}
	return o
}

// Sampler binds a saturation and lightness and returns the resulting
// SampleFunc for the segmentation core.
func (o *Local) Sampler(saturation, lightness float64) hue.SampleFunc {
	return func(_ context.Context, h float64) (*hue.ColorDescriptor, error) {
		return o.Sample(h, saturation, lightness), nil
	}
}

// Sample names the color at the given hue for a saturation and lightness
// in percent (0-100).
func (o *Local) Sample(h, saturation, lightness float64) *hue.ColorDescriptor {
	h = hue.Normalize(h)
	c := colorful.Hsl(h, saturation/100, lightness/100)

	name := o.nearest(c)
	r, g, b := c.RGB255()

	return &hue.ColorDescriptor{
		Name: name,
		RGB: hue.RGBValue{
			Value: fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
			R:     int(r),
			G:     int(g),
			B:     int(b),
		},
		HSL: hue.HSLValue{
			Value: fmt.Sprintf("hsl(%d, %d%%, %d%%)",
				int(math.Round(h)), int(math.Round(saturation)), int(math.Round(lightness))),
			H: h,
			S: saturation,
			L: lightness,
		},
	}
}

// nearest returns the table name with the smallest Lab distance to c.
func (o *Local) nearest(c colorful.Color) string {
	cl, ca, cb := c.Lab()

	bestIdx, bestDist := 0, math.Inf(1)
	for i, lab := range o.lab {
		dl, da, db := cl-lab[0], ca-lab[1], cb-lab[2]
		d := dl*dl + da*da + db*db
		if d < bestDist {
			bestIdx, bestDist = i, d
		}
	}
	return o.entries[bestIdx].Name
}
