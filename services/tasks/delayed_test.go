package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFiresOnce(t *testing.T) {
	var runs atomic.Int32
	task := Schedule(context.Background(), "test", 10*time.Millisecond, func() { runs.Add(1) })

	assert.True(t, task.Pending())
	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not fire")
	}
	assert.Equal(t, int32(1), runs.Load())
	assert.False(t, task.Pending())
	assert.False(t, task.Cancel(), "cancel after firing is a no-op")
}

func TestCancelPreventsRun(t *testing.T) {
	var runs atomic.Int32
	task := Schedule(context.Background(), "test", 20*time.Millisecond, func() { runs.Add(1) })

	require.True(t, task.Cancel())
	assert.False(t, task.Cancel())
	<-task.Done()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestContextCancellationStopsTask(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	task := Schedule(ctx, "test", 30*time.Millisecond, func() { runs.Add(1) })

	cancel()
	assert.Eventually(t, func() bool { return !task.Pending() }, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestCancelDuringRunReportsFalse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	task := Schedule(context.Background(), "test", 0, func() {
		close(started)
		<-release
	})

	<-started
	assert.False(t, task.Cancel())
	close(release)
	<-task.Done()
	assert.Equal(t, "test", task.Name())
}

func TestCancelReleasesContextHook(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	task := Schedule(ctx, "test", time.Hour, func() {})

	require.True(t, task.Cancel())
	assert.False(t, task.stop(), "context hook is still registered")
}
