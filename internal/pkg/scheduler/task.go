package scheduler

import (
	"context"
	"sync"
	"time"
)

// TaskRunner owns at most one repeating task. Starting a new task
// deterministically cancels the previous one, so a state machine can hold
// a single runner per concern and never leak a poll loop across
// transitions or teardown.
type TaskRunner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTaskRunner creates an idle task runner
func NewTaskRunner() *TaskRunner {
	return &TaskRunner{}
}

// Start cancels any running task, then launches fn on the given interval
// until Stop is called or ctx is cancelled. When immediate is true fn
// runs once before the first tick. Ticks never overlap: the next tick
// waits for the previous fn call to return.
func (t *TaskRunner) Start(ctx context.Context, interval time.Duration, immediate bool, fn func(ctx context.Context)) {
	t.Stop()

	taskCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.mu.Lock()
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)

		if immediate {
			fn(taskCtx)
			if taskCtx.Err() != nil {
				return
			}
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-taskCtx.Done():
				return
			case <-ticker.C:
				fn(taskCtx)
			}
		}
	}()
}

// Stop cancels the running task and waits for it to finish. Safe to call
// on an idle runner and from within fn itself via a goroutine.
func (t *TaskRunner) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	done := t.done
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// StopAsync cancels the running task without waiting for it to finish.
// Needed when a task asks to tear itself down from inside its own tick.
func (t *TaskRunner) StopAsync() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
