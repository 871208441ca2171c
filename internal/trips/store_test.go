package trips_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/trips"
)

var ada = domain.Identity{ID: "u1", FullName: "Ada Lovelace"}

func validDraft() trips.Draft {
	return trips.Draft{
		Title:          "Test Trek",
		Description:    "A short walk somewhere quiet.",
		Destination:    "Nowhere",
		StartDate:      "2025-03-01",
		EndDate:        "2025-03-08",
		MaxTravelers:   4,
		PricePerPerson: 100,
	}
}

// TestList_seedOrder verifies the store starts with the five sample
// trips in insertion order.
func TestList_seedOrder(t *testing.T) {
	s := trips.NewStore()

	all := s.List()

	require.Len(t, all, 5)
	assert.Equal(t, "Beach Adventure in Bali", all[0].Title)
	assert.Equal(t, "Tokyo Food & Culture Tour", all[4].Title)
	assert.Equal(t, domain.TripStatusFull, all[4].Status)
}

// TestCreate_appendsOpenTrip covers the creation scenario: one record is
// appended with currentTravelers=1 and status open.
func TestCreate_appendsOpenTrip(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	s := trips.NewStore(trips.WithClock(func() time.Time { return now }))

	trip, err := s.Create(validDraft(), ada)

	require.NoError(t, err)
	assert.Equal(t, "Test Trek", trip.Title)
	assert.Equal(t, "u1", trip.CreatorID)
	assert.Equal(t, "Ada Lovelace", trip.CreatorName)
	assert.Equal(t, 1, trip.CurrentTravelers)
	assert.Equal(t, domain.TripStatusOpen, trip.Status)
	assert.Equal(t, now, trip.CreatedAt)

	all := s.List()
	require.Len(t, all, 6)
	assert.Equal(t, trip, all[5], "new trip appended at the end")
}

// TestCreate_distinctIDs verifies identifier idempotence: identical
// drafts in immediate succession get distinct IDs.
func TestCreate_distinctIDs(t *testing.T) {
	s := trips.NewStore()

	a, err := s.Create(validDraft(), ada)
	require.NoError(t, err)
	b, err := s.Create(validDraft(), ada)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreate_validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*trips.Draft)
	}{
		{"missing title", func(d *trips.Draft) { d.Title = "  " }},
		{"missing destination", func(d *trips.Draft) { d.Destination = "" }},
		{"missing description", func(d *trips.Draft) { d.Description = "" }},
		{"missing start date", func(d *trips.Draft) { d.StartDate = "" }},
		{"missing end date", func(d *trips.Draft) { d.EndDate = "" }},
		{"end before start", func(d *trips.Draft) { d.EndDate = "2025-02-01" }},
		{"too few travelers", func(d *trips.Draft) { d.MaxTravelers = 1 }},
		{"negative price", func(d *trips.Draft) { d.PricePerPerson = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := trips.NewStore()
			draft := validDraft()
			tt.mutate(&draft)

			_, err := s.Create(draft, ada)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Len(t, s.List(), 5, "failed create must not mutate the store")
		})
	}
}

// TestCreate_unauthenticated verifies creation without an identity is
// rejected before any validation runs.
func TestCreate_unauthenticated(t *testing.T) {
	s := trips.NewStore()

	_, err := s.Create(validDraft(), domain.Identity{})

	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Len(t, s.List(), 5, "failed create must not mutate the store")
}

// TestSearch_filters verifies the case-insensitive substring filter over
// title, destination, and description.
func TestSearch_filters(t *testing.T) {
	s := trips.NewStore()

	assert.Len(t, s.Search(""), 5)
	assert.Len(t, s.Search("  "), 5)

	byTitle := s.Search("beach adventure")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "1", byTitle[0].ID)

	byDestination := s.Search("NEPAL")
	require.Len(t, byDestination, 1)
	assert.Equal(t, "2", byDestination[0].ID)

	byDescription := s.Search("museums")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "3", byDescription[0].ID)

	assert.Empty(t, s.Search("antarctica"))
}

// TestGet verifies lookup by ID.
func TestGet(t *testing.T) {
	s := trips.NewStore()

	trip, ok := s.Get("4")
	require.True(t, ok)
	assert.Equal(t, "Safari Experience in Kenya", trip.Title)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

// TestList_defensiveCopy verifies callers cannot mutate store state
// through the returned slice.
func TestList_defensiveCopy(t *testing.T) {
	s := trips.NewStore()

	got := s.List()
	got[0].Title = "tampered"

	assert.Equal(t, "Beach Adventure in Bali", s.List()[0].Title)
}

// TestCreate_manySequential exercises ID uniqueness across a burst of
// creations.
func TestCreate_manySequential(t *testing.T) {
	s := trips.NewStore()
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		d := validDraft()
		d.Title = fmt.Sprintf("Trip %d", i)
		trip, err := s.Create(d, ada)
		require.NoError(t, err)
		require.False(t, seen[trip.ID], "duplicate id %s", trip.ID)
		seen[trip.ID] = true
	}
}
