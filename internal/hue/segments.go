package hue

// BuildSegments turns the sorted known hues into an ordered segment list
// covering [0,360) exactly: each segment starts at a known hue, ends at
// the next one (360 for the last), and carries the color sampled at its
// start.
//
// lookup resolves a hue to its completed sample; a hue it cannot resolve
// is skipped. Callers must ensure every known hue has a completed sample
// before building, or the output will have a gap.
func BuildSegments(hues []float64, lookup func(float64) (*ColorDescriptor, bool)) []HueSegment {
	segments := make([]HueSegment, 0, len(hues))
	for i, h := range hues {
		color, ok := lookup(h)
		if !ok {
			continue
		}
		end := 360.0
		if i+1 < len(hues) {
			end = hues[i+1]
		}
		segments = append(segments, HueSegment{StartHue: h, EndHue: end, Color: color})
	}
	return segments
}

// MergeAdjacent fuses neighboring segments that share a color name into
// maximal runs, then checks the 0/360 seam: if the first and last merged
// segments are the same color, they are one region on the circle, and the
// pair is fused into a single wrap segment whose EndHue exceeds 360.
//
// Input must be sorted ascending by StartHue. A single-segment list (the
// whole circle one color) is returned unchanged.
func MergeAdjacent(segments []HueSegment) []HueSegment {
	if len(segments) == 0 {
		return segments
	}

	merged := make([]HueSegment, 0, len(segments))
	current := segments[0]
	for _, seg := range segments[1:] {
		if seg.Color.Name == current.Color.Name {
			current.EndHue = seg.EndHue
			continue
		}
		merged = append(merged, current)
		current = seg
	}
	merged = append(merged, current)

	if len(merged) > 1 {
		first, last := merged[0], merged[len(merged)-1]
		if first.Color.Name == last.Color.Name {
			merged[0] = HueSegment{
				StartHue: last.StartHue,
				EndHue:   first.EndHue + 360,
				Color:    last.Color,
			}
			merged = merged[:len(merged)-1]
		}
	}
	return merged
}
