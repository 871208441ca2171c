package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/notify"
	"github.com/travelbuddy/travelbuddy/internal/sched"
)

func newTestCenter(t *testing.T) *notify.Center {
	t.Helper()
	q := sched.NewQueue()
	t.Cleanup(q.Close)
	c := notify.NewCenter(q, notify.WithDefaultDuration(25*time.Millisecond))
	t.Cleanup(c.Close)
	return c
}

// waitGone polls until no notification with the ID remains active.
func waitGone(t *testing.T, c *notify.Center, id string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		found := false
		for _, n := range c.Active() {
			if n.ID == id {
				found = true
			}
		}
		if !found {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("notification %s never expired", id)
}

// TestPush_autoDismiss verifies a toast appears and then disappears
// after its duration elapses.
func TestPush_autoDismiss(t *testing.T) {
	c := newTestCenter(t)

	id := c.Success("Trip Created Successfully!", "posted", 20*time.Millisecond)
	require.NotEmpty(t, id)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, domain.NotificationSuccess, active[0].Type)
	assert.Equal(t, 20*time.Millisecond, active[0].Duration)

	waitGone(t, c, id)
}

// TestPush_defaultDuration verifies a zero duration takes the center's
// default.
func TestPush_defaultDuration(t *testing.T) {
	c := newTestCenter(t)

	c.Error("Authentication Required", "sign in first", 0)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 25*time.Millisecond, active[0].Duration)
}

// TestDismiss_early verifies manual dismissal removes the toast and
// later expiry of its timer is harmless.
func TestDismiss_early(t *testing.T) {
	c := newTestCenter(t)

	id := c.Success("t", "m", 30*time.Millisecond)
	c.Dismiss(id)
	assert.Empty(t, c.Active())

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.Active())

	// Dismissing an unknown ID is a no-op.
	c.Dismiss("nope")
}

// TestActive_pushOrder verifies ordering and independence of multiple
// toasts.
func TestActive_pushOrder(t *testing.T) {
	c := newTestCenter(t)

	first := c.Success("first", "m", time.Minute)
	second := c.Error("second", "m", time.Minute)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Title)
	assert.Equal(t, "second", active[1].Title)

	c.Dismiss(first)
	active = c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second, active[0].ID)
}

// TestClose_rejectsPushes verifies a closed center drops pushes.
func TestClose_rejectsPushes(t *testing.T) {
	q := sched.NewQueue()
	defer q.Close()
	c := notify.NewCenter(q)

	c.Close()
	assert.Empty(t, c.Push(domain.Notification{Title: "late"}))
	assert.Empty(t, c.Active())
}
