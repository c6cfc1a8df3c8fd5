package hue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_MemoizesPerPair(t *testing.T) {
	oracle := threeNameOracle()
	cache := NewResultCache()
	opts := Options{Saturation: 100, Lightness: 50, Sample: oracle.sample}
	ctx := context.Background()

	first, err := cache.Segments(ctx, opts)
	require.NoError(t, err)
	callsAfterFirst := oracle.callCount()

	second, err := cache.Segments(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, oracle.callCount(), "a memoized pair must not touch the oracle again")
	assert.Equal(t, 1, cache.Size())
}

func TestResultCache_ConcurrentCallersShareOneRun(t *testing.T) {
	oracle := threeNameOracle()
	oracle.delay = 5 * time.Millisecond
	cache := NewResultCache()
	opts := Options{Saturation: 100, Lightness: 50, Sample: oracle.sample}

	const callers = 8
	results := make([][]HueSegment, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			segments, err := cache.Segments(context.Background(), opts)
			assert.NoError(t, err)
			results[i] = segments
		}()
	}
	wg.Wait()

	// One underlying run: the oracle call count matches a solo run of the
	// same space, not callers times that.
	solo := threeNameOracle()
	_, err := Collect(context.Background(), Options{Saturation: 100, Lightness: 50, Sample: solo.sample})
	require.NoError(t, err)
	assert.Equal(t, solo.callCount(), oracle.callCount())

	for _, segments := range results[1:] {
		assert.Equal(t, results[0], segments)
	}
}

func TestResultCache_FailureEvictsAndAllowsRetry(t *testing.T) {
	boom := errors.New("flaky oracle")
	oracle := threeNameOracle()
	failing := true
	oracle.failAt = func(float64) error {
		if failing {
			return boom
		}
		return nil
	}
	cache := NewResultCache()
	opts := Options{Saturation: 100, Lightness: 50, Sample: oracle.sample}
	ctx := context.Background()

	_, err := cache.Segments(ctx, opts)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Size(), "a failed run must not occupy a memo slot")

	callsAfterFailure := oracle.callCount()
	failing = false

	segments, err := cache.Segments(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, segmentNames(segments))
	assert.Greater(t, oracle.callCount(), callsAfterFailure, "retry must re-attempt oracle calls")
}

func TestResultCache_ConcurrentFailureSharedNotDuplicated(t *testing.T) {
	boom := errors.New("down")
	oracle := uniformOracle("never")
	oracle.delay = 10 * time.Millisecond
	oracle.failAt = func(float64) error { return boom }
	cache := NewResultCache()
	opts := Options{Saturation: 40, Lightness: 60, Sample: oracle.sample}

	const callers = 4
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, errs[i] = cache.Segments(context.Background(), opts)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.ErrorIs(t, err, boom)
	}
	// The anchor probe fails once for the one shared run.
	assert.Equal(t, 1, oracle.callCount())
}

func TestResultCache_DistinctPairsComputedSeparately(t *testing.T) {
	oracle := threeNameOracle()
	cache := NewResultCache()
	ctx := context.Background()

	_, err := cache.Segments(ctx, Options{Saturation: 100, Lightness: 50, Sample: oracle.sample})
	require.NoError(t, err)
	callsAfterFirst := oracle.callCount()

	_, err = cache.Segments(ctx, Options{Saturation: 100, Lightness: 30, Sample: oracle.sample})
	require.NoError(t, err)

	assert.Greater(t, oracle.callCount(), callsAfterFirst)
	assert.Equal(t, 2, cache.Size())
}

func TestResultCache_Clear(t *testing.T) {
	oracle := threeNameOracle()
	cache := NewResultCache()
	opts := Options{Saturation: 100, Lightness: 50, Sample: oracle.sample}
	ctx := context.Background()

	_, err := cache.Segments(ctx, opts)
	require.NoError(t, err)
	callsAfterFirst := oracle.callCount()

	cache.Clear()
	assert.Equal(t, 0, cache.Size())

	_, err = cache.Segments(ctx, opts)
	require.NoError(t, err)
	assert.Greater(t, oracle.callCount(), callsAfterFirst, "Clear must force recomputation")
}
