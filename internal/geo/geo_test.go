package geo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/geo"
)

// stubLocator is a test double for geo.Locator.
type stubLocator struct {
	pos geo.Position
	err error
}

func (s *stubLocator) Locate(context.Context) (geo.Position, error) {
	return s.pos, s.err
}

var _ geo.Locator = (*stubLocator)(nil)

// TestResolve_success verifies a fix renders as "lat, lon".
func TestResolve_success(t *testing.T) {
	loc := &stubLocator{pos: geo.Position{Lat: -8.5069, Lon: 115.2625}}

	got := geo.Resolve(context.Background(), loc)

	assert.Equal(t, "-8.5069, 115.2625", got)
}

// TestResolve_failure verifies failures produce the fixed placeholder,
// never an empty string.
func TestResolve_failure(t *testing.T) {
	loc := &stubLocator{err: errors.New("gps down")}

	got := geo.Resolve(context.Background(), loc)

	assert.Equal(t, geo.PlaceholderUnavailable, got)
}

// TestResolve_unsupported verifies a nil locator maps to the
// not-supported placeholder.
func TestResolve_unsupported(t *testing.T) {
	got := geo.Resolve(context.Background(), nil)

	assert.Equal(t, geo.PlaceholderUnsupported, got)
}

// TestCommandLocator_parse exercises output parsing through a shell
// command standing in for a GPS helper.
func TestCommandLocator_parse(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    geo.Position
		wantErr bool
	}{
		{
			name:    "space separated",
			command: `echo 27.8056 86.7140`,
			want:    geo.Position{Lat: 27.8056, Lon: 86.7140},
		},
		{
			name:    "comma separated with noise",
			command: `echo fix: -8.5069, 115.2625 alt 12`,
			want:    geo.Position{Lat: -8.5069, Lon: 115.2625},
		},
		{
			name:    "no numbers",
			command: `echo no fix available`,
			wantErr: true,
		},
		{
			name:    "out of range",
			command: `echo 999 999`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := geo.NewLocator(tt.command)
			require.NotNil(t, loc)

			pos, err := loc.Locate(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)
		})
	}
}

// TestNewLocator_empty verifies an empty command disables geolocation.
func TestNewLocator_empty(t *testing.T) {
	assert.Nil(t, geo.NewLocator("  "))
}
