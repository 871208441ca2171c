// Package notify manages transient toast notifications. A pushed
// notification self-destructs after its duration unless dismissed first;
// dismissal cancels the timer.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/sched"
)

// DefaultDuration is the auto-dismiss delay used when a push does not
// specify one.
const DefaultDuration = 3000 * time.Millisecond

type entry struct {
	notification domain.Notification
	task         *sched.Task
}

// Center owns the active notifications.
type Center struct {
	queue           *sched.Queue
	defaultDuration time.Duration
	newID           func() string

	mu     sync.Mutex
	active []entry
	closed bool
}

// Option customizes a Center.
type Option func(*Center)

// WithDefaultDuration overrides the fallback auto-dismiss delay.
func WithDefaultDuration(d time.Duration) Option {
	return func(c *Center) { c.defaultDuration = d }
}

// NewCenter returns a Center dispatching dismiss timers on the queue.
func NewCenter(queue *sched.Queue, opts ...Option) *Center {
	c := &Center{
		queue:           queue,
		defaultDuration: DefaultDuration,
		newID:           uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push adds a notification and schedules its auto-dismiss. A zero
// Duration takes the center's default; the assigned ID is returned.
func (c *Center) Push(n domain.Notification) string {
	if n.Duration <= 0 {
		n.Duration = c.defaultDuration
	}
	n.ID = c.newID()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ""
	}

	task := c.queue.After(n.Duration, func() {
		c.Dismiss(n.ID)
	})
	c.active = append(c.active, entry{notification: n, task: task})
	return n.ID
}

// Success pushes a success toast with the given duration.
func (c *Center) Success(title, message string, d time.Duration) string {
	return c.Push(domain.Notification{
		Type: domain.NotificationSuccess, Title: title, Message: message, Duration: d,
	})
}

// Error pushes an error toast with the given duration.
func (c *Center) Error(title, message string, d time.Duration) string {
	return c.Push(domain.Notification{
		Type: domain.NotificationError, Title: title, Message: message, Duration: d,
	})
}

// Dismiss removes a notification early and cancels its timer. Unknown
// IDs (already expired) are ignored.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.active {
		if e.notification.ID == id {
			e.task.Cancel()
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// Active returns the live notifications in push order.
func (c *Center) Active() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, 0, len(c.active))
	for _, e := range c.active {
		out = append(out, e.notification)
	}
	return out
}

// Close cancels all outstanding timers and rejects further pushes.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for _, e := range c.active {
		e.task.Cancel()
	}
	c.active = nil
}
