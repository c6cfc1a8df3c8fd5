package hue

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ResultCache memoizes whole segmentation runs per (saturation,
// lightness) pair for the lifetime of the process.
//
// Concurrent requests for the same key share one in-flight computation:
// N simultaneous callers trigger exactly one run and all receive its
// outcome. Only successful runs are stored, so a failed key is free for
// the next caller to retry rather than poisoned with a cached error.
//
// The cache is plain injected state with an explicit lifecycle: create it
// at service start, Clear it on demand or in test teardown.
type ResultCache struct {
	group singleflight.Group

	mu      sync.RWMutex
	results map[string][]HueSegment
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{results: make(map[string][]HueSegment)}
}

func cacheKey(saturation, lightness float64) string {
	return fmt.Sprintf("%g:%g", saturation, lightness)
}

// Segments returns the memoized segment list for the options' saturation
// and lightness, running the segmentation on a miss. The returned slice
// is shared between callers and must be treated as read-only.
func (c *ResultCache) Segments(ctx context.Context, opts Options) ([]HueSegment, error) {
	key := cacheKey(opts.Saturation, opts.Lightness)

	c.mu.RLock()
	if segments, ok := c.results[key]; ok {
		c.mu.RUnlock()
		return segments, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		segments, err := Collect(ctx, opts)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.results[key] = segments
		c.mu.Unlock()
		return segments, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]HueSegment), nil
}

// Clear drops every memoized result.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	c.results = make(map[string][]HueSegment)
	c.mu.Unlock()
}

// Size returns the number of memoized (saturation, lightness) results.
func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
