package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/alerts"
	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// TestContacts_fixedList verifies the emergency services and their tel:
// URIs.
func TestContacts_fixedList(t *testing.T) {
	contacts := alerts.Contacts()

	require.Len(t, contacts, 4)
	assert.Equal(t, "Police", contacts[0].Name)
	assert.Equal(t, "tel:911", contacts[0].TelURI())
	assert.Equal(t, "Embassy", contacts[3].Name)
	assert.Equal(t, "tel:+1-234-567-8900", contacts[3].TelURI())
}

// TestSubmit_appendsActiveAlert verifies a valid submission is recorded
// as an active alert and shows up first in Recent.
func TestSubmit_appendsActiveAlert(t *testing.T) {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	s := alerts.NewStore(alerts.WithClock(func() time.Time { return now }))

	alert, err := s.Submit(alerts.Request{
		UserID:   "u1",
		UserName: "Ada Lovelace",
		TripID:   "2",
		Location: "Namche Bazaar",
		Message:  "Twisted an ankle on the trail",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusActive, alert.Status)
	assert.Equal(t, now, alert.CreatedAt)
	assert.Nil(t, alert.Latitude)

	recent := s.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, alert.ID, recent[0].ID, "newest first")
	assert.Equal(t, "John Doe", recent[1].UserName, "seed alert still listed")
}

// TestSubmit_validation verifies location and message are both required
// and nothing is recorded on failure.
func TestSubmit_validation(t *testing.T) {
	s := alerts.NewStore()

	_, err := s.Submit(alerts.Request{Message: "help"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Submit(alerts.Request{Location: "somewhere", Message: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, s.Recent(), 1)
}

// TestSubmit_withCoordinates verifies a GPS fix is carried through.
func TestSubmit_withCoordinates(t *testing.T) {
	s := alerts.NewStore()
	lat, lon := 27.8056, 86.7140

	alert, err := s.Submit(alerts.Request{
		Location: "27.8056, 86.7140",
		Message:  "Lost the group",
		Latitude: &lat, Longitude: &lon,
	})

	require.NoError(t, err)
	require.NotNil(t, alert.Latitude)
	assert.Equal(t, 27.8056, *alert.Latitude)
	require.NotNil(t, alert.Longitude)
	assert.Equal(t, 86.7140, *alert.Longitude)
}
