// Package hue discovers the named color regions of the hue wheel for a
// fixed saturation and lightness, using an injected point-sampling oracle
// that is expensive to call.
//
// The wheel is treated as the circular domain [0,360) of hue degrees. A
// segmentation run adaptively subdivides the circle, sampling only where
// neighboring probes disagree on the color name, and produces an ordered
// list of HueSegment values that partition the circle into maximal
// same-named intervals.
//
// # Pipeline
//
// A run is composed of small, separately testable stages:
//
//   - Normalize maps any real hue onto [0,360).
//   - Sampler memoizes oracle calls per distinct hue and collapses
//     concurrent requests for the same hue into one call.
//   - Engine drives the divide-and-conquer subdivision over a work stack.
//   - BuildSegments, MergeAdjacent and ResolveDuplicates shape the known
//     samples into the final merged, deduplicated segment list.
//   - Stream and Collect expose the pipeline incrementally or as a single
//     blocking call; ResultCache memoizes whole runs per (saturation,
//     lightness) pair.
//
// # Wrap-Around Representation
//
// A segment that crosses the 0 degree point is expressed with an EndHue
// greater than 360, for example {350, 380} for the interval covering
// 350..360 plus 0..20. StartHue < EndHue always holds.
//
// # Concurrency
//
// The Sampler and ResultCache are safe for concurrent use. The Engine
// issues its three probes per range concurrently but shares one Sampler,
// so a hue requested by two ranges at the same time still reaches the
// oracle exactly once. All blocking operations accept a context and
// unwind cleanly on cancellation.
package hue
