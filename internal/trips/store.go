// Package trips holds the in-memory trip store. Trips are append-only:
// the store supports listing, searching, and creation, and nothing else.
// Joining a trip is presentational and never reaches the store.
package trips

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// MinTravelers is the smallest group a trip may be created for. A group
// trip with one seat is a solo trip.
const MinTravelers = 2

// Draft carries the fields collected by the create-trip form.
type Draft struct {
	Title          string
	Description    string
	Destination    string
	StartDate      string
	EndDate        string
	MaxTravelers   int
	PricePerPerson int
}

// Store is an ordered in-memory collection of trips.
type Store struct {
	mu    sync.Mutex
	trips []domain.Trip

	now   func() time.Time
	newID func() string
}

// Option customizes a Store, mainly for tests.
type Option func(*Store)

// WithClock replaces the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc replaces the identifier generator.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore returns a store preloaded with the sample trips.
func NewStore(opts ...Option) *Store {
	s := &Store{
		trips: seedTrips(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all trips in insertion order.
func (s *Store) List() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Trip, len(s.trips))
	copy(out, s.trips)
	return out
}

// Get returns the trip with the given ID.
func (s *Store) Get(id string) (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trips {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Trip{}, false
}

// Search returns trips whose title, destination, or description contains
// the query, case-insensitively. An empty query returns everything.
func (s *Store) Search(query string) []domain.Trip {
	q := strings.ToLower(strings.TrimSpace(query))
	all := s.List()
	if q == "" {
		return all
	}
	var out []domain.Trip
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Destination), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// Create validates the draft and appends a new open trip created by the
// given identity. The creator counts as the first traveler.
func (s *Store) Create(draft Draft, creator domain.Identity) (domain.Trip, error) {
	if creator.ID == "" {
		return domain.Trip{}, domain.ErrUnauthenticated
	}
	if err := validate(draft); err != nil {
		return domain.Trip{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip := domain.Trip{
		ID:               s.newID(),
		CreatorID:        creator.ID,
		CreatorName:      creator.FullName,
		Title:            strings.TrimSpace(draft.Title),
		Description:      strings.TrimSpace(draft.Description),
		Destination:      strings.TrimSpace(draft.Destination),
		StartDate:        draft.StartDate,
		EndDate:          draft.EndDate,
		MaxTravelers:     draft.MaxTravelers,
		CurrentTravelers: 1,
		PricePerPerson:   draft.PricePerPerson,
		Status:           domain.TripStatusOpen,
		CreatedAt:        s.now(),
	}
	s.trips = append(s.trips, trip)
	return trip, nil
}

func validate(draft Draft) error {
	var missing []string
	if strings.TrimSpace(draft.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(draft.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(draft.Description) == "" {
		missing = append(missing, "description")
	}
	if draft.StartDate == "" {
		missing = append(missing, "start date")
	}
	if draft.EndDate == "" {
		missing = append(missing, "end date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if draft.EndDate < draft.StartDate {
		// Dates are YYYY-MM-DD, so string order is date order.
		return fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}
	if draft.MaxTravelers < MinTravelers {
		return fmt.Errorf("%w: at least %d travelers required", domain.ErrValidation, MinTravelers)
	}
	if draft.PricePerPerson < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return nil
}
