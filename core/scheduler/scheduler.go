package scheduler

import (
	"context"
	"sync"
	"time"

	"internhub/core/logger"
)

// Clock abstracts wall-clock reads so temporal logic can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewRealClock() Clock { return realClock{} }

// TaskFunc is one tick of a periodic task.
type TaskFunc func(ctx context.Context)

// PeriodicTask runs fn once immediately on Start and then on a fixed
// interval until Stop or context cancellation.
type PeriodicTask struct {
	name     string
	interval time.Duration
	fn       TaskFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewPeriodicTask(name string, interval time.Duration, fn TaskFunc) *PeriodicTask {
	return &PeriodicTask{
		name:     name,
		interval: interval,
		fn:       fn,
	}
}

func (t *PeriodicTask) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	go t.loop(ctx)
	logger.Info("Scheduler:TaskStarted", "task", t.name, "interval", t.interval.String())
}

// Stop cancels the task and waits for the in-flight tick to finish.
func (t *PeriodicTask) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	cancel, done := t.cancel, t.done
	t.running = false
	t.mu.Unlock()

	cancel()
	<-done
	logger.Info("Scheduler:TaskStopped", "task", t.name)
}

func (t *PeriodicTask) loop(ctx context.Context) {
	defer close(t.done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

// tick runs one execution. A panicking tick is logged and swallowed so a
// single bad item cannot halt the loop.
func (t *PeriodicTask) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Scheduler:TickPanic", "task", t.name, "panic", r)
		}
	}()
	t.fn(ctx)
}
