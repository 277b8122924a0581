package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task names used in logs.
const (
	TypeShowReminder      = "reminder:show"
	TypeSettlePayment     = "payment:settle"
	TypeDispatchAmbulance = "ambulance:dispatch"
)

// Task is a one-shot in-process delayed callback. It fires at most once and
// never after Cancel returns or after its owning context is done.
type Task struct {
	name  string
	mu    sync.Mutex
	state taskState
	timer *time.Timer
	stop  func() bool
	done  chan struct{}
}

type taskState int

const (
	statePending taskState = iota
	stateRunning
	stateFired
	stateCancelled
)

// Schedule runs fn after delay unless the task is cancelled first or ctx ends.
func Schedule(ctx context.Context, name string, delay time.Duration, fn func()) *Task {
	t := &Task{name: name, done: make(chan struct{})}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = time.AfterFunc(delay, func() { t.fire(fn) })
	t.stop = context.AfterFunc(ctx, func() {
		if t.Cancel() {
			zap.L().Debug("Delayed task cancelled by context", zap.String("task", name))
		}
	})
	return t
}

func (t *Task) fire(fn func()) {
	t.mu.Lock()
	if t.state != statePending {
		t.mu.Unlock()
		return
	}
	t.state = stateRunning
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.state = stateFired
		t.mu.Unlock()
		t.stop()
		close(t.done)
	}()
	fn()
}

// Cancel prevents a pending run. It reports whether the run was prevented; false
// means fn already ran, is running, or the task was cancelled before.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	if t.state != statePending {
		t.mu.Unlock()
		return false
	}
	t.state = stateCancelled
	t.timer.Stop()
	close(t.done)
	stop := t.stop
	t.mu.Unlock()

	stop()
	return true
}

// Pending reports whether the task is still waiting to fire.
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == statePending
}

// Done is closed once the task fired or was cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Name returns the task name.
func (t *Task) Name() string {
	return t.name
}
