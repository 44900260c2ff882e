package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskRunner_ImmediateRunsBeforeFirstTick(t *testing.T) {
	runner := NewTaskRunner()
	defer runner.Stop()

	var runs int32
	runner.Start(context.Background(), time.Hour, true, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestTaskRunner_StartCancelsPreviousTask(t *testing.T) {
	runner := NewTaskRunner()
	defer runner.Stop()

	var first, second int32
	runner.Start(context.Background(), 10*time.Millisecond, false, func(ctx context.Context) {
		atomic.AddInt32(&first, 1)
	})
	runner.Start(context.Background(), 10*time.Millisecond, false, func(ctx context.Context) {
		atomic.AddInt32(&second, 1)
	})

	firstAfterRestart := atomic.LoadInt32(&first)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, firstAfterRestart, atomic.LoadInt32(&first))
	assert.Greater(t, atomic.LoadInt32(&second), int32(0))
}

func TestTaskRunner_StopWaitsForRunningTick(t *testing.T) {
	runner := NewTaskRunner()

	var finished int32
	runner.Start(context.Background(), time.Hour, true, func(ctx context.Context) {
		time.Sleep(50 * time.Millisecond)
		atomic.StoreInt32(&finished, 1)
	})

	time.Sleep(10 * time.Millisecond)
	runner.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&finished))
}

func TestTaskRunner_StopAsyncFromInsideTick(t *testing.T) {
	runner := NewTaskRunner()
	defer runner.Stop()

	var runs int32
	runner.Start(context.Background(), 10*time.Millisecond, true, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
		runner.StopAsync()
	})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}

func TestTaskRunner_StopOnIdleRunnerIsSafe(t *testing.T) {
	runner := NewTaskRunner()
	runner.Stop()
	runner.Stop()
}

func TestTaskRunner_ContextCancellationStopsTask(t *testing.T) {
	runner := NewTaskRunner()
	defer runner.Stop()

	ctx, cancel := context.WithCancel(context.Background())

	var runs int32
	runner.Start(ctx, 10*time.Millisecond, false, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	time.Sleep(35 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs))
}
