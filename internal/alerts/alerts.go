// Package alerts holds emergency contacts and the emergency alert list.
// Alerts raised during a run are kept in memory only; there is no
// dispatch backend, so "sending" an alert means recording it and telling
// the user it went out.
package alerts

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// Contact is an emergency phone contact reachable from the SOS screen.
type Contact struct {
	Name   string
	Number string
	Icon   string
}

// TelURI returns the tel: URI handed to the platform dialer.
func (c Contact) TelURI() string {
	return "tel:" + strings.ReplaceAll(c.Number, " ", "")
}

// Contacts returns the fixed emergency contact list.
func Contacts() []Contact {
	return []Contact{
		{Name: "Police", Number: "911", Icon: "police"},
		{Name: "Ambulance", Number: "911", Icon: "ambulance"},
		{Name: "Fire Department", Number: "911", Icon: "fire"},
		{Name: "Embassy", Number: "+1-234-567-8900", Icon: "embassy"},
	}
}

// Request carries the fields of the send-alert form.
type Request struct {
	UserID    string
	UserName  string
	TripID    string
	Location  string
	Message   string
	Latitude  *float64
	Longitude *float64
}

// Store is the in-memory alert list, seeded with one resolved sample.
type Store struct {
	mu     sync.Mutex
	alerts []domain.EmergencyAlert

	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store preloaded with the sample alert.
func NewStore(opts ...Option) *Store {
	lat, lon := -8.5069, 115.2625
	s := &Store{
		alerts: []domain.EmergencyAlert{
			{
				ID:        "1",
				UserID:    "7",
				UserName:  "John Doe",
				TripID:    "1",
				Location:  "Ubud, Bali",
				Message:   "Minor accident, need medical assistance",
				Latitude:  &lat,
				Longitude: &lon,
				Status:    domain.AlertStatusResolved,
				CreatedAt: time.Date(2024, 11, 18, 8, 30, 0, 0, time.UTC),
			},
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the request and records a new active alert. Both
// location and message are required.
func (s *Store) Submit(req Request) (domain.EmergencyAlert, error) {
	if strings.TrimSpace(req.Location) == "" {
		return domain.EmergencyAlert{}, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Message) == "" {
		return domain.EmergencyAlert{}, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	alert := domain.EmergencyAlert{
		ID:        s.newID(),
		UserID:    req.UserID,
		UserName:  req.UserName,
		TripID:    req.TripID,
		Location:  strings.TrimSpace(req.Location),
		Message:   strings.TrimSpace(req.Message),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    domain.AlertStatusActive,
		CreatedAt: s.now(),
	}
	s.alerts = append(s.alerts, alert)
	return alert, nil
}

// Recent returns all alerts, newest first.
func (s *Store) Recent() []domain.EmergencyAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EmergencyAlert, len(s.alerts))
	for i, a := range s.alerts {
		out[len(s.alerts)-1-i] = a
	}
	return out
}
