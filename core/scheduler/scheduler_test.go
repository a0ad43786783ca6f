package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicTask_RunsImmediatelyAndOnInterval(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int64
	task := NewPeriodicTask("test", 20*time.Millisecond, func(ctx context.Context) {
		ticks.Add(1)
	})

	task.Start(context.Background())
	defer task.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPeriodicTask_StopWaitsForInFlightTick(t *testing.T) {
	t.Parallel()

	var done atomic.Bool
	task := NewPeriodicTask("test", time.Hour, func(ctx context.Context) {
		time.Sleep(30 * time.Millisecond)
		done.Store(true)
	})

	task.Start(context.Background())
	task.Stop()

	assert.True(t, done.Load(), "Stop returned before the running tick finished")
}

func TestPeriodicTask_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int64
	task := NewPeriodicTask("test", time.Hour, func(ctx context.Context) {
		ticks.Add(1)
	})

	task.Start(context.Background())
	task.Start(context.Background())
	task.Stop()

	assert.Equal(t, int64(1), ticks.Load())
}

func TestPeriodicTask_PanicDoesNotKillLoop(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int64
	task := NewPeriodicTask("test", 20*time.Millisecond, func(ctx context.Context) {
		ticks.Add(1)
		panic("bad event")
	})

	task.Start(context.Background())
	defer task.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRealClock(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := NewRealClock().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
