package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/travelbuddy/internal/config"
)

// TestLoadFile_missing verifies that a missing config file yields the
// defaults rather than an error: devices ship without one.
func TestLoadFile_missing(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "TravelBuddy", cfg.WindowTitle)
	require.Equal(t, 800*time.Millisecond, cfg.ReplyDelay())
	require.Equal(t, 3*time.Second, cfg.NotificationDuration())
	require.Equal(t, 1500*time.Millisecond, cfg.CreateRedirectDelay())
}

// TestLoadFile_overrides verifies that file values replace defaults and
// unset values keep them.
func TestLoadFile_overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travelbuddy.toml")
	body := `
log_level = "debug"
window_title = "TravelBuddy Dev"
accent_color = 0xFF6B35
reply_delay_ms = 50
location_command = "gpspipe -w -n 1"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := config.LoadFile(path)

	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "TravelBuddy Dev", cfg.WindowTitle)
	require.Equal(t, uint32(0xFF6B35), cfg.AccentColor)
	require.Equal(t, 50*time.Millisecond, cfg.ReplyDelay())
	require.Equal(t, "gpspipe -w -n 1", cfg.LocationCommand)
	// Unset fields keep defaults.
	require.Equal(t, 3*time.Second, cfg.NotificationDuration())
}

// TestLoadFile_malformed verifies that a broken file is an error, not a
// silent fallback.
func TestLoadFile_malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travelbuddy.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = [broken"), 0644))

	_, err := config.LoadFile(path)

	require.Error(t, err)
	require.ErrorContains(t, err, path)
}

// TestLoad_envPath verifies the TRAVELBUDDY_CONFIG override.
func TestLoad_envPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`window_title = "Custom"`), 0644))
	t.Setenv(config.EnvConfigPath, path)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "Custom", cfg.WindowTitle)
}
