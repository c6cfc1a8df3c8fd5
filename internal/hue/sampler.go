package hue

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// SampleFunc is the point-sampling oracle contract. For a fixed
// (saturation, lightness) binding it must be a pure function of the hue.
// Implementations may be remote lookups, cache reads, or test doubles.
type SampleFunc func(ctx context.Context, hue float64) (*ColorDescriptor, error)

// Sampler memoizes oracle calls for one segmentation run.
//
// It guarantees the oracle is invoked at most once per distinct normalized
// hue (to six decimal digits), no matter how many callers request that hue
// concurrently: the first request installs an in-flight entry before the
// oracle is called, and later requests for the same key wait on it. A
// failed call removes its in-flight entry so a later retry can re-attempt
// the hue; a failure is never cached.
//
// A Sampler belongs to exactly one run and must not be reused across runs.
// It is safe for concurrent use.
type Sampler struct {
	sample SampleFunc

	mu       sync.Mutex
	inflight map[float64]*inflightCall
	resolved map[float64]*ColorDescriptor
	calls    int
}

// inflightCall is the shared handle for one in-progress oracle lookup.
// done is closed once val/err are set.
type inflightCall struct {
	done chan struct{}
	val  *ColorDescriptor
	err  error
}

// NewSampler creates a Sampler backed by the given oracle.
func NewSampler(sample SampleFunc) *Sampler {
	return &Sampler{
		sample:   sample,
		inflight: make(map[float64]*inflightCall),
		resolved: make(map[float64]*ColorDescriptor),
	}
}

// Get returns the color at the given hue, invoking the oracle only if no
// completed or in-flight lookup exists for that hue's cache key.
//
// On oracle failure every caller waiting on the same key receives the
// same *OracleError. Cancellation of ctx releases only this caller; an
// oracle call already in flight is left to complete for the others.
func (s *Sampler) Get(ctx context.Context, hue float64) (*ColorDescriptor, error) {
	key := Key(hue)

	s.mu.Lock()
	if c, ok := s.resolved[key]; ok {
		s.mu.Unlock()
		return c, nil
	}
	if call, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.val, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	s.inflight[key] = call
	s.calls++
	s.mu.Unlock()

	val, err := s.sample(ctx, key)
	if err != nil {
		var oe *OracleError
		if !errors.As(err, &oe) {
			err = &OracleError{Hue: key, Err: err}
		}
	}

	s.mu.Lock()
	delete(s.inflight, key)
	if err == nil {
		s.resolved[key] = val
	}
	s.mu.Unlock()

	call.val, call.err = val, err
	close(call.done)
	return val, err
}

// GetCached returns the completed sample for the hue, if any. It never
// invokes the oracle and never blocks.
func (s *Sampler) GetCached(hue float64) (*ColorDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.resolved[Key(hue)]
	return c, ok
}

// KnownHues returns the distinct normalized hues with completed samples,
// sorted ascending.
func (s *Sampler) KnownHues() []float64 {
	s.mu.Lock()
	hues := make([]float64, 0, len(s.resolved))
	for h := range s.resolved {
		hues = append(hues, h)
	}
	s.mu.Unlock()

	sort.Float64s(hues)
	return hues
}

// OracleCalls returns the number of times the oracle has been invoked.
func (s *Sampler) OracleCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
