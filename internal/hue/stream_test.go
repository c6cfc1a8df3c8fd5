package hue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeNameOracle() *stubOracle {
	return regionOracle(
		region{0, 90, "Red"},
		region{90, 210, "Green"},
		region{210, 360, "Blue"},
	)
}

func TestStream_EmitsIncrementalSnapshots(t *testing.T) {
	opts := Options{Saturation: 100, Lightness: 50, Sample: threeNameOracle().sample}

	var snapshots []*Snapshot
	var final *Snapshot
	for ev := range Stream(context.Background(), opts) {
		require.NoError(t, ev.Err)
		require.NotNil(t, ev.Snapshot)
		require.NotEmpty(t, ev.Snapshot.Segments, "empty snapshots must be suppressed")
		snapshots = append(snapshots, ev.Snapshot)
		if ev.Final {
			final = ev.Snapshot
		}
	}

	assert.Greater(t, len(snapshots), 1, "a three-name space must stream intermediate snapshots")
	require.NotNil(t, final, "a successful stream must end with a final snapshot")
	assert.Same(t, final, snapshots[len(snapshots)-1], "nothing may follow the final snapshot")

	collected, err := Collect(context.Background(), Options{
		Saturation: 100, Lightness: 50, Sample: threeNameOracle().sample,
	})
	require.NoError(t, err)
	assert.Equal(t, collected, final.Segments, "streaming and collect-all must agree on the result")
}

func TestStream_SuppressesUnchangedSnapshots(t *testing.T) {
	opts := Options{Saturation: 100, Lightness: 50, Sample: uniformOracle("Beige").sample}

	var events []Event
	for ev := range Stream(context.Background(), opts) {
		require.NoError(t, ev.Err)
		events = append(events, ev)
	}

	// One snapshot when the anchor resolves; the midpoint probe changes
	// nothing and is suppressed; the final snapshot is always sent.
	require.Len(t, events, 2)
	assert.False(t, events[0].Final)
	assert.True(t, events[1].Final)
	assert.Equal(t, events[0].Snapshot.Segments, events[1].Snapshot.Segments)
}

func TestStream_ErrorIsTerminal(t *testing.T) {
	boom := errors.New("naming service down")
	oracle := threeNameOracle()
	oracle.failAt = func(h float64) error {
		if h >= 90 {
			return boom
		}
		return nil
	}
	opts := Options{Saturation: 100, Lightness: 50, Sample: oracle.sample}

	var sawError bool
	for ev := range Stream(context.Background(), opts) {
		require.False(t, sawError, "no event may follow the terminal error")
		if ev.Err != nil {
			sawError = true
			assert.ErrorIs(t, ev.Err, boom)
			assert.Nil(t, ev.Snapshot)
			continue
		}
	}
	assert.True(t, sawError, "oracle failure must surface as a terminal error event")
}

func TestStream_CancellationClosesWithoutError(t *testing.T) {
	oracle := threeNameOracle()
	oracle.delay = 5 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	events := Stream(ctx, Options{Saturation: 100, Lightness: 50, Sample: oracle.sample})

	// Take the first snapshot, then abort the run.
	first, ok := <-events
	require.True(t, ok)
	require.NoError(t, first.Err)
	cancel()

	for ev := range events {
		assert.NoError(t, ev.Err, "cancellation must not be reported as a stream error")
	}
}

func TestCollect_ThreeNameScenario(t *testing.T) {
	oracle := threeNameOracle()
	segments, err := Collect(context.Background(), Options{
		Saturation: 100, Lightness: 50, Sample: oracle.sample,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, segmentNames(segments))
}

func TestCollect_PropagatesOracleError(t *testing.T) {
	oracle := uniformOracle("never")
	oracle.failAt = func(float64) error { return errors.New("offline") }

	_, err := Collect(context.Background(), Options{
		Saturation: 100, Lightness: 50, Sample: oracle.sample,
	})
	var oe *OracleError
	require.ErrorAs(t, err, &oe)
}
