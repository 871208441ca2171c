// Package geo resolves the device's position on demand. Handhelds vary
// wildly here, so the source is a configured command (gpspipe, a
// firmware helper, termux-location) expected to print latitude and
// longitude; when none is configured, geolocation is unsupported and the
// caller gets a placeholder instead of an error.
package geo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Placeholder strings shown in the location field when a fix cannot be
// obtained. These are values, not errors: the emergency form stays
// submittable with them.
const (
	PlaceholderUnavailable = "Location unavailable"
	PlaceholderUnsupported = "Geolocation not supported"
)

// ErrNoFix is returned when the location source ran but produced no
// usable coordinates.
var ErrNoFix = errors.New("no location fix")

// Position is a decimal-degrees GPS fix.
type Position struct {
	Lat float64
	Lon float64
}

// String renders the fix the way the location field displays it.
func (p Position) String() string {
	return fmt.Sprintf("%g, %g", p.Lat, p.Lon)
}

// Locator obtains the current position.
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// CommandLocator runs a configured command and parses the first two
// floats on its stdout as latitude and longitude.
type CommandLocator struct {
	Command string
}

func (l *CommandLocator) Locate(ctx context.Context) (Position, error) {
	parts := strings.Fields(l.Command)
	if len(parts) == 0 {
		return Position{}, ErrNoFix
	}
	out, err := exec.CommandContext(ctx, parts[0], parts[1:]...).Output()
	if err != nil {
		return Position{}, fmt.Errorf("location command: %w", err)
	}
	return parseFix(string(out))
}

func parseFix(out string) (Position, error) {
	fields := strings.FieldsFunc(out, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	var coords []float64
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		coords = append(coords, v)
		if len(coords) == 2 {
			break
		}
	}
	if len(coords) < 2 {
		return Position{}, ErrNoFix
	}
	if coords[0] < -90 || coords[0] > 90 || coords[1] < -180 || coords[1] > 180 {
		return Position{}, ErrNoFix
	}
	return Position{Lat: coords[0], Lon: coords[1]}, nil
}

// NewLocator returns a CommandLocator, or nil when no command is
// configured.
func NewLocator(command string) Locator {
	if strings.TrimSpace(command) == "" {
		return nil
	}
	return &CommandLocator{Command: command}
}

// Resolve turns a locator query into the string the location field
// shows: "lat, lon" on success, a placeholder otherwise. A nil locator
// means the platform has no location capability.
func Resolve(ctx context.Context, locator Locator) string {
	if locator == nil {
		return PlaceholderUnsupported
	}
	pos, err := locator.Locate(ctx)
	if err != nil {
		return PlaceholderUnavailable
	}
	return pos.String()
}
