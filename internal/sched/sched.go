// Package sched provides a single-threaded task queue with one-shot
// deferred tasks. All timer-driven mutation in the application (chat
// replies, toast expiry, the post-creation redirect) runs through a
// Queue, so no two callbacks ever execute concurrently and every timer
// has an explicit cancellation handle tied to its owner's lifetime.
package sched

import (
	"sync"
	"time"
)

// Queue executes submitted functions in order on a single worker
// goroutine.
type Queue struct {
	mu     sync.Mutex
	tasks  chan func()
	closed bool
	done   chan struct{}
}

// NewQueue starts a queue with a buffered intake.
func NewQueue() *Queue {
	q := &Queue{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for fn := range q.tasks {
		fn()
	}
}

// Dispatch enqueues fn for execution. Returns false if the queue has
// been closed.
func (q *Queue) Dispatch(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.tasks <- fn
	return true
}

// After schedules fn to be dispatched onto the queue after d. The
// returned Task cancels the timer if it has not fired yet; a fired task
// may still be waiting in the queue and will run.
func (q *Queue) After(d time.Duration, fn func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(d, func() {
		q.Dispatch(fn)
	})
	return t
}

// Close stops intake and waits for queued work to finish. Pending timers
// that fire after Close are dropped by Dispatch.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()
	<-q.done
}

// Wait blocks until everything dispatched before the call has executed.
// Useful at teardown points and in tests.
func (q *Queue) Wait() {
	ch := make(chan struct{})
	if !q.Dispatch(func() { close(ch) }) {
		return
	}
	<-ch
}

// Task is the cancellation handle for a deferred dispatch.
type Task struct {
	timer *time.Timer
}

// Cancel stops the task if it has not fired. Reports whether the call
// prevented the dispatch.
func (t *Task) Cancel() bool {
	if t == nil || t.timer == nil {
		return false
	}
	return t.timer.Stop()
}
