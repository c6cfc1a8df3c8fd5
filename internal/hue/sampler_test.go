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

func TestSamplerGet_MemoizesPerHue(t *testing.T) {
	oracle := uniformOracle("Cerulean")
	s := NewSampler(oracle.sample)
	ctx := context.Background()

	first, err := s.Get(ctx, 120)
	require.NoError(t, err)
	second, err := s.Get(ctx, 120)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, oracle.callCount())
}

func TestSamplerGet_NormalizesAndRoundsKeys(t *testing.T) {
	oracle := uniformOracle("Cerulean")
	s := NewSampler(oracle.sample)
	ctx := context.Background()

	// All four spell the same hue.
	for _, h := range []float64{120, 480, -240, 120.0000004} {
		_, err := s.Get(ctx, h)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, oracle.callCount())
	assert.Equal(t, []float64{120}, s.KnownHues())
}

func TestSamplerGet_SingleFlight(t *testing.T) {
	oracle := uniformOracle("Cerulean")
	oracle.delay = 20 * time.Millisecond
	s := NewSampler(oracle.sample)

	const callers = 16
	results := make([]*ColorDescriptor, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			c, err := s.Get(context.Background(), 42)
			assert.NoError(t, err)
			results[i] = c
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, oracle.callCount(), "concurrent callers must collapse into one oracle call")
	for _, c := range results[1:] {
		assert.Same(t, results[0], c)
	}
}

func TestSamplerGet_FailurePropagatesToAllWaiters(t *testing.T) {
	boom := errors.New("naming service unavailable")
	oracle := uniformOracle("never")
	oracle.delay = 20 * time.Millisecond
	oracle.failAt = func(float64) error { return boom }
	s := NewSampler(oracle.sample)

	const callers = 4
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, errs[i] = s.Get(context.Background(), 10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, oracle.callCount())
	for _, err := range errs {
		require.Error(t, err)
		var oe *OracleError
		require.ErrorAs(t, err, &oe)
		assert.ErrorIs(t, err, boom)
	}
}

func TestSamplerGet_FailureIsNotCached(t *testing.T) {
	oracle := uniformOracle("Cerulean")
	fail := true
	oracle.failAt = func(float64) error {
		if fail {
			return errors.New("transient")
		}
		return nil
	}
	s := NewSampler(oracle.sample)
	ctx := context.Background()

	_, err := s.Get(ctx, 77)
	require.Error(t, err)
	_, cached := s.GetCached(77)
	assert.False(t, cached, "a failure must not poison the key")

	fail = false
	c, err := s.Get(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, "Cerulean", c.Name)
	assert.Equal(t, 2, oracle.callCount(), "retry after failure must reach the oracle again")
}

func TestSamplerGetCached(t *testing.T) {
	oracle := uniformOracle("Cerulean")
	s := NewSampler(oracle.sample)

	_, ok := s.GetCached(5)
	assert.False(t, ok)

	want, err := s.Get(context.Background(), 5)
	require.NoError(t, err)

	got, ok := s.GetCached(5)
	require.True(t, ok)
	assert.Same(t, want, got)
	assert.Equal(t, 1, oracle.callCount(), "GetCached must never invoke the oracle")
}

func TestSamplerKnownHues_SortedDistinct(t *testing.T) {
	oracle := uniformOracle("Cerulean")
	s := NewSampler(oracle.sample)
	ctx := context.Background()

	for _, h := range []float64{270, 0, 90, 180, 90, 630} {
		_, err := s.Get(ctx, h)
		require.NoError(t, err)
	}

	assert.Equal(t, []float64{0, 90, 180, 270}, s.KnownHues())
}
