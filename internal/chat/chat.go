// Package chat implements a per-trip chat session. A session is
// ephemeral: it starts from two scripted messages and is thrown away
// when the chat view closes. Each user message schedules one deferred
// assistant reply.
package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelbuddy/travelbuddy/internal/assistant"
	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/sched"
)

// DefaultReplyDelay is how long the assistant "types" before answering.
const DefaultReplyDelay = 800 * time.Millisecond

// Session owns the ordered transcript for one trip-chat invocation.
type Session struct {
	tripID string
	engine *assistant.Engine
	queue  *sched.Queue
	delay  time.Duration
	now    func() time.Time
	newID  func() string

	mu       sync.Mutex
	messages []domain.ChatMessage
	pending  []*sched.Task
	closed   bool
}

// Option customizes a Session.
type Option func(*Session)

// WithReplyDelay overrides the assistant reply delay.
func WithReplyDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession opens a chat for the given trip, seeded with the scripted
// history. Replies are dispatched on the provided queue.
func NewSession(tripID string, engine *assistant.Engine, queue *sched.Queue, opts ...Option) *Session {
	s := &Session{
		tripID: tripID,
		engine: engine,
		queue:  queue,
		delay:  DefaultReplyDelay,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = []domain.ChatMessage{
		{
			ID:         s.newID(),
			SenderID:   "2",
			SenderName: "Sarah Johnson",
			Message:    "Hey everyone! Looking forward to this trip!",
			Timestamp:  s.now().Add(-time.Hour),
		},
		{
			ID:         s.newID(),
			SenderID:   "3",
			SenderName: "Mike Chen",
			Message:    "Same here! Has anyone booked their flights yet?",
			Timestamp:  s.now().Add(-30 * time.Minute),
		},
	}
	return s
}

// TripID returns the trip this session belongs to.
func (s *Session) TripID() string { return s.tripID }

// Send appends the sender's message immediately and schedules the
// assistant's reply after the configured delay. Empty or blank messages
// are dropped. The reply always lands after the message that triggered
// it; ordering across rapid sends is timer-arrival order.
func (s *Session) Send(sender domain.Identity, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.messages = append(s.messages, domain.ChatMessage{
		ID:         s.newID(),
		SenderID:   sender.ID,
		SenderName: sender.FullName,
		Message:    trimmed,
		Timestamp:  s.now(),
	})

	task := s.queue.After(s.delay, func() {
		s.appendReply(trimmed)
	})
	s.pending = append(s.pending, task)
}

func (s *Session) appendReply(userMessage string) {
	reply := s.engine.Respond(userMessage)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.messages = append(s.messages, domain.ChatMessage{
		ID:         s.newID(),
		SenderID:   assistant.SenderID,
		SenderName: assistant.SenderName,
		Message:    reply,
		Timestamp:  s.now(),
	})
}

// Messages returns a snapshot of the transcript in append order.
func (s *Session) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close tears the session down: pending replies are cancelled and late
// timers become no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, task := range s.pending {
		task.Cancel()
	}
	s.pending = nil
}
