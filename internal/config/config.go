// Package config loads application configuration from an optional TOML
// file. Every field has a default: a device must boot with no config
// file present.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the environment variable that overrides the
// config file location.
const EnvConfigPath = "TRAVELBUDDY_CONFIG"

// DefaultPath is where the config file is looked for when the
// environment variable is unset.
const DefaultPath = "travelbuddy.toml"

// Config holds all tunables for the application.
type Config struct {
	// LogPath is the full path of the log file. Empty means console only.
	LogPath string `toml:"log_path"`
	// LogLevel controls the minimum log level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// WindowTitle is shown in windowed (desktop) mode.
	WindowTitle string `toml:"window_title"`
	// AccentColor is a custom accent color as 0xRRGGBB. Zero keeps the
	// firmware theme.
	AccentColor uint32 `toml:"accent_color"`
	// IsNextUI enables NextUI firmware theming and power handling.
	IsNextUI bool `toml:"is_nextui"`
	// IsCannoli enables Cannoli firmware theming.
	IsCannoli bool `toml:"is_cannoli"`
	// FlipFaceButtons uses direct face button mapping instead of the
	// Nintendo-style swap.
	FlipFaceButtons bool `toml:"flip_face_buttons"`
	// Language selects the UI message catalog, e.g. "en".
	Language string `toml:"language"`

	// DialerCommand is invoked with a tel: URI appended to place a call
	// from the emergency screen. Empty disables dialing.
	DialerCommand string `toml:"dialer_command"`
	// LocationCommand is a command expected to print "<lat> <lon>" on
	// stdout. Empty means geolocation is unsupported on this device.
	LocationCommand string `toml:"location_command"`

	// ReplyDelayMS is the delay before the assistant answers a chat
	// message.
	ReplyDelayMS int `toml:"reply_delay_ms"`
	// NotificationMS is the default toast auto-dismiss duration.
	NotificationMS int `toml:"notification_ms"`
	// CreateRedirectMS is the pause after a successful trip creation
	// before returning to the dashboard.
	CreateRedirectMS int `toml:"create_redirect_ms"`

	// IconCacheDir receives rasterized icon PNGs. Empty uses a
	// per-process temp directory.
	IconCacheDir string `toml:"icon_cache_dir"`
}

func defaults() Config {
	return Config{
		LogLevel:         "info",
		WindowTitle:      "TravelBuddy",
		Language:         "en",
		ReplyDelayMS:     800,
		NotificationMS:   3000,
		CreateRedirectMS: 1500,
	}
}

// Load reads the config file named by TRAVELBUDDY_CONFIG, or the default
// path. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultPath
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the given TOML file, filling in
// defaults for anything unset.
func LoadFile(path string) (Config, error) {
	cfg := defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.ReplyDelayMS <= 0 {
		cfg.ReplyDelayMS = 800
	}
	if cfg.NotificationMS <= 0 {
		cfg.NotificationMS = 3000
	}
	if cfg.CreateRedirectMS <= 0 {
		cfg.CreateRedirectMS = 1500
	}
	return cfg, nil
}

// ReplyDelay returns ReplyDelayMS as a duration.
func (c Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// NotificationDuration returns NotificationMS as a duration.
func (c Config) NotificationDuration() time.Duration {
	return time.Duration(c.NotificationMS) * time.Millisecond
}

// CreateRedirectDelay returns CreateRedirectMS as a duration.
func (c Config) CreateRedirectDelay() time.Duration {
	return time.Duration(c.CreateRedirectMS) * time.Millisecond
}
