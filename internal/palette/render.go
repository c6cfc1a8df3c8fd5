// Package palette renders finished hue segmentations as images.
package palette

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/hueforge/hue-wheel-mcp/internal/hue"
)

// RenderResult contains a rendered palette strip as base64-encoded PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Segments    int    `json:"segments"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderStrip draws the segment list as a horizontal strip: the X axis is
// the hue circle unrolled from 0 to 360, and each column takes the color
// of the segment covering its hue, so band widths are proportional to
// angular span. A wrap segment paints both ends of the strip.
//
// Non-positive width or height select the defaults 720x60.
func RenderStrip(segments []hue.HueSegment, width, height int) (*RenderResult, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to render")
	}
	if width <= 0 {
		width = 720
	}
	if height <= 0 {
		height = 60
	}

	// Paint at one column per degree, then resize to the requested size.
	strip := imaging.New(360, 1, color.NRGBA{A: 255})
	for x := 0; x < 360; x++ {
		seg := segmentAt(segments, float64(x)+0.5)
		if seg == nil {
			continue
		}
		strip.SetNRGBA(x, 0, color.NRGBA{
			R: uint8(seg.Color.RGB.R),
			G: uint8(seg.Color.RGB.G),
			B: uint8(seg.Color.RGB.B),
			A: 255,
		})
	}
	scaled := transform.Resize(strip, width, height, transform.NearestNeighbor)

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderResult{
		Width:       width,
		Height:      height,
		Segments:    len(segments),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// segmentAt returns the segment covering the hue, or nil when the list
// leaves it uncovered.
func segmentAt(segments []hue.HueSegment, h float64) *hue.HueSegment {
	for i := range segments {
		if segments[i].Contains(h) {
			return &segments[i]
		}
	}
	return nil
}
