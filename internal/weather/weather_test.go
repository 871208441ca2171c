package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/weather"
)

// TestLookup_knownDestination verifies an exact-match table hit.
func TestLookup_knownDestination(t *testing.T) {
	info := weather.Lookup("Bali, Indonesia")

	assert.Equal(t, "Bali, Indonesia", info.Destination)
	assert.Equal(t, 36, info.Temperature)
	assert.Equal(t, "Clouds", info.Condition)
	assert.Equal(t, 20, info.Humidity)
	assert.Equal(t, 10, info.WindSpeed)
	require.NotNil(t, info.Alert)
	assert.Equal(t, domain.WeatherAlertHeat, info.Alert.Type)
}

// TestLookup_fallback verifies unmapped destinations get the fixed
// neutral record, echoing the queried destination.
func TestLookup_fallback(t *testing.T) {
	info := weather.Lookup("Nowhere")

	assert.Equal(t, "Nowhere", info.Destination)
	assert.Equal(t, 22, info.Temperature)
	assert.Equal(t, "Unknown", info.Condition)
	assert.Equal(t, 50, info.Humidity)
	assert.Equal(t, 10, info.WindSpeed)
	require.NotNil(t, info.Alert)
	assert.Equal(t, domain.WeatherAlertSafe, info.Alert.Type)
	assert.Equal(t, "Weather information unavailable. Check local sources.", info.Alert.Message)
}

// TestLookup_pure verifies same-input-same-output and that callers
// mutating a result do not poison the table.
func TestLookup_pure(t *testing.T) {
	first := weather.Lookup("Tokyo, Japan")
	first.Alert.Message = "tampered"

	second := weather.Lookup("Tokyo, Japan")
	assert.Equal(t, "Rainy conditions expected. Carry an umbrella and waterproof gear.", second.Alert.Message)
	assert.Equal(t, first.Temperature, second.Temperature)

	// Near-miss strings are not fuzzy-matched.
	assert.Equal(t, "Unknown", weather.Lookup("tokyo, japan").Condition)
}
