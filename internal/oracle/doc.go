// Package oracle provides the point-sampling collaborators the hue
// segmentation core consumes.
//
// Two implementations of the same contract are available:
//
//   - Client talks to a remote color-naming HTTP API and is used when a
//     service endpoint is configured.
//   - Local answers from a built-in named color table using nearest-match
//     in CIE-Lab space. It is deterministic, needs no network, and serves
//     as the default oracle and the realistic fixture for tests.
//
// Both bind a (saturation, lightness) pair via Sampler and hand the core
// a hue.SampleFunc that is a pure function of the hue.
package oracle
