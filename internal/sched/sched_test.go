package sched_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/sched"
)

// TestDispatch_ordered verifies tasks run in submission order on one
// worker, never interleaved.
func TestDispatch_ordered(t *testing.T) {
	q := sched.NewQueue()
	defer q.Close()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 50; i++ {
		i := i
		require.True(t, q.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}
	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

// TestAfter_firesOnQueue verifies a deferred task lands on the queue
// after roughly the requested delay.
func TestAfter_firesOnQueue(t *testing.T) {
	q := sched.NewQueue()
	defer q.Close()

	fired := make(chan time.Time, 1)
	start := time.Now()
	q.After(20*time.Millisecond, func() {
		fired <- time.Now()
	})

	select {
	case at := <-fired:
		assert.GreaterOrEqual(t, at.Sub(start), 20*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("deferred task never ran")
	}
}

// TestTask_cancel verifies a cancelled task never runs.
func TestTask_cancel(t *testing.T) {
	q := sched.NewQueue()
	defer q.Close()

	ran := false
	task := q.After(30*time.Millisecond, func() { ran = true })
	require.True(t, task.Cancel())

	time.Sleep(80 * time.Millisecond)
	q.Wait()
	assert.False(t, ran)

	// Cancelling again is a no-op.
	assert.False(t, task.Cancel())
}

// TestClose_stopsIntake verifies Dispatch reports failure after Close
// and that Close drains queued work first.
func TestClose_stopsIntake(t *testing.T) {
	q := sched.NewQueue()

	ran := false
	require.True(t, q.Dispatch(func() { ran = true }))
	q.Close()

	assert.True(t, ran, "queued work finishes before Close returns")
	assert.False(t, q.Dispatch(func() {}))

	// Close is idempotent.
	q.Close()
}

// TestAfter_afterClose verifies a timer firing into a closed queue is
// dropped rather than panicking.
func TestAfter_afterClose(t *testing.T) {
	q := sched.NewQueue()
	q.After(10*time.Millisecond, func() { t.Error("should not run") })
	q.Close()

	time.Sleep(50 * time.Millisecond)
}
