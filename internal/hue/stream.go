package hue

import (
	"context"
	"encoding/json"
	"sync"
)

// Options configure one segmentation run.
type Options struct {
	// Saturation and Lightness are percentages in 0-100. They select the
	// slice of the HSL space the run explores and are passed through to
	// cache keying; the oracle itself is already bound to them.
	Saturation float64
	Lightness  float64

	// Sample is the point-sampling oracle. Required.
	Sample SampleFunc

	// MinSpan caps subdivision depth; zero selects DefaultMinSpan.
	MinSpan float64
}

// Snapshot is one emitted view of the segmentation in progress.
type Snapshot struct {
	Segments []HueSegment `json:"segments"`
}

// Event is a single streaming emission: either a snapshot or a terminal
// error. Final marks the last snapshot of a successful run.
type Event struct {
	Snapshot *Snapshot
	Err      error
	Final    bool
}

// Collect drives a full segmentation run to completion and returns only
// the final merged, deduplicated segment list.
func Collect(ctx context.Context, opts Options) ([]HueSegment, error) {
	engine := NewEngine(NewSampler(opts.Sample), opts.MinSpan, nil)
	return engine.Run(ctx, opts.Saturation, opts.Lightness)
}

// Stream runs the same computation as Collect but emits an Event every
// time a newly resolved sample changes the merged segment set. The
// channel is closed when the run ends.
//
// Emission rules:
//   - Empty snapshots and snapshots identical to the last emitted one are
//     suppressed.
//   - On success the final segment list is always emitted, with Final
//     set, even when it matches the previous snapshot.
//   - On oracle failure a single Event with Err set terminates the
//     stream; no snapshot follows it.
//   - Cancelling ctx tears the run down and closes the channel without
//     an error event. Cancellation is the consumer's own doing and is
//     not reported back to it as a failure.
func Stream(ctx context.Context, opts Options) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		send := func(ev Event) bool {
			select {
			case events <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		var (
			mu      sync.Mutex
			last    string
			engine  *Engine
			sampler = NewSampler(opts.Sample)
		)
		// Probes resolve concurrently; snapshot recomputation and the
		// changed-signature check must be serialized so emissions stay
		// ordered by resolution.
		observer := func() {
			mu.Lock()
			defer mu.Unlock()
			segments := engine.Segments()
			if len(segments) == 0 {
				return
			}
			sig, err := json.Marshal(segments)
			if err != nil || string(sig) == last {
				return
			}
			last = string(sig)
			send(Event{Snapshot: &Snapshot{Segments: segments}})
		}
		engine = NewEngine(sampler, opts.MinSpan, observer)

		segments, err := engine.Run(ctx, opts.Saturation, opts.Lightness)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			send(Event{Err: err})
			return
		}
		send(Event{Snapshot: &Snapshot{Segments: segments}, Final: true})
	}()

	return events
}
