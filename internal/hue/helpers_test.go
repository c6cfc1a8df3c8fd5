package hue

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// testDescriptor fabricates a descriptor the way the naming oracle would,
// so descriptors for the same (name, hue) compare deeply equal across runs.
func testDescriptor(name string, h float64) *ColorDescriptor {
	return &ColorDescriptor{
		Name: name,
		RGB:  RGBValue{Value: fmt.Sprintf("rgb(%s)", name), R: 200, G: 100, B: 50},
		HSL:  HSLValue{Value: fmt.Sprintf("hsl(%g, 100%%, 50%%)", h), H: h, S: 100, L: 50},
	}
}

// stubOracle is a configurable counting oracle.
type stubOracle struct {
	nameAt func(h float64) string // required
	failAt func(h float64) error  // optional per-hue failure
	delay  time.Duration          // optional artificial latency

	mu    sync.Mutex
	calls int
}

func (o *stubOracle) sample(ctx context.Context, h float64) (*ColorDescriptor, error) {
	o.mu.Lock()
	o.calls++
	o.mu.Unlock()

	if o.delay > 0 {
		select {
		case <-time.After(o.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if o.failAt != nil {
		if err := o.failAt(h); err != nil {
			return nil, err
		}
	}
	return testDescriptor(o.nameAt(h), h), nil
}

func (o *stubOracle) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

// uniformOracle names every hue the same.
func uniformOracle(name string) *stubOracle {
	return &stubOracle{nameAt: func(float64) string { return name }}
}

// regionOracle names hues by half-open [from, to) ranges on [0,360).
// Ranges must cover the circle.
type region struct {
	from, to float64
	name     string
}

func regionOracle(regions ...region) *stubOracle {
	return &stubOracle{nameAt: func(h float64) string {
		for _, r := range regions {
			if h >= r.from && h < r.to {
				return r.name
			}
		}
		return "Uncharted"
	}}
}

// segmentNames extracts the color names of a segment list in order.
func segmentNames(segments []HueSegment) []string {
	names := make([]string, len(segments))
	for i, s := range segments {
		names[i] = s.Color.Name
	}
	return names
}
