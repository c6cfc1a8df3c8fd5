package hue

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// DefaultMinSpan is the finest range width, in degrees, the subdivision
// engine will split. Ranges at or below this width are left as-is.
const DefaultMinSpan = 1.0

// Engine drives the divide-and-conquer sampling of the hue circle.
//
// Traversal is depth-first over an explicit work stack: the left child of
// a split range is fully explored before the right one. Depth-first order
// only affects the order partial results are discovered in (one side of
// the circle resolves early); the final segment set is identical under
// breadth-first traversal.
type Engine struct {
	sampler  *Sampler
	minSpan  float64
	observer func()
}

// NewEngine creates an Engine over the given sampler. minSpan <= 0 selects
// DefaultMinSpan. The observer, if non-nil, is called after every resolved
// probe; streaming consumers use it to recompute snapshots.
func NewEngine(sampler *Sampler, minSpan float64, observer func()) *Engine {
	if minSpan <= 0 {
		minSpan = DefaultMinSpan
	}
	return &Engine{sampler: sampler, minSpan: minSpan, observer: observer}
}

// hueRange is a pending subdivision task. Bounds are kept un-normalized
// for interval bookkeeping; normalization happens at the oracle boundary.
type hueRange struct {
	start, end float64
}

// Run samples the circle for the given saturation and lightness until
// every same-named run of hues is bounded by probes at its edges, then
// returns the merged, deduplicated segment list.
//
// Hue 0 is always sampled first: it anchors the circle even when the
// whole space turns out to be a single color. When saturation is 0, or
// lightness is 0 or 100, hue has no visual effect, so the single anchor
// sample decides the entire circle and the oracle is called exactly once.
//
// Any oracle failure aborts the run with that error; no partial result is
// returned.
func (e *Engine) Run(ctx context.Context, saturation, lightness float64) ([]HueSegment, error) {
	if _, err := e.probe(ctx, 0); err != nil {
		return nil, err
	}

	if saturation != 0 && lightness != 0 && lightness != 100 {
		if err := e.subdivide(ctx); err != nil {
			return nil, err
		}
	}

	return e.Segments(), nil
}

// subdivide processes ranges from a work stack seeded with the full
// circle. Each range wide enough to split is probed at its start, end and
// midpoint; if the three names disagree, the two halves are pushed for
// further refinement. The midpoint is rounded up, so a child range is
// always at most half its parent and the stack depth stays logarithmic in
// 360/minSpan.
func (e *Engine) subdivide(ctx context.Context) error {
	stack := []hueRange{{0, 360}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		width := r.end - r.start
		if width <= e.minSpan {
			continue
		}
		mid := math.Ceil(r.start + width/2)

		names, err := e.probeAll(ctx, r.start, mid, r.end)
		if err != nil {
			return err
		}
		if names[0] == names[1] && names[1] == names[2] {
			// Uniform by the three-point check: stop refining here.
			continue
		}

		// Right half pushed first so the left half is popped next.
		stack = append(stack, hueRange{mid, r.end}, hueRange{r.start, mid})
	}
	return nil
}

// probeAll samples the three hues concurrently through the shared cache
// and returns their color names in argument order.
func (e *Engine) probeAll(ctx context.Context, hues ...float64) ([]string, error) {
	names := make([]string, len(hues))
	g, ctx := errgroup.WithContext(ctx)
	for i, h := range hues {
		i, h := i, h
		g.Go(func() error {
			c, err := e.probe(ctx, h)
			if err != nil {
				return err
			}
			names[i] = c.Name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func (e *Engine) probe(ctx context.Context, h float64) (*ColorDescriptor, error) {
	c, err := e.sampler.Get(ctx, h)
	if err != nil {
		return nil, err
	}
	if e.observer != nil {
		e.observer()
	}
	return c, nil
}

// Segments shapes everything known so far into the merged, deduplicated
// segment list. It is synchronous and never touches the oracle, so it can
// be called between probes to produce intermediate snapshots.
func (e *Engine) Segments() []HueSegment {
	built := BuildSegments(e.sampler.KnownHues(), e.sampler.GetCached)
	return ResolveDuplicates(MergeAdjacent(built))
}
