package alerts

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Dialer places a call to an emergency contact through whatever the
// platform offers. Failure to dial is logged and surfaced, never fatal:
// the number stays on screen either way.
type Dialer interface {
	Dial(ctx context.Context, contact Contact) error
}

// CommandDialer shells out to a configured handler command with the
// contact's tel: URI appended, e.g. "xdg-open" on desktop or a firmware
// helper on-device.
type CommandDialer struct {
	Command string
	Log     *slog.Logger
}

const dialTimeout = 10 * time.Second

// Dial runs the handler command. A missing command means the platform
// has no dialer.
func (d *CommandDialer) Dial(ctx context.Context, contact Contact) error {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	parts := strings.Fields(d.Command)
	args := append(parts[1:], contact.TelURI())
	cmd := exec.CommandContext(ctx, parts[0], args...)
	if err := cmd.Run(); err != nil {
		d.Log.Error("dial failed", "contact", contact.Name, "error", err)
		return err
	}
	d.Log.Info("dialed emergency contact", "contact", contact.Name, "uri", contact.TelURI())
	return nil
}

// NewDialer returns a CommandDialer, or nil when no command is
// configured (dialing unsupported on this platform).
func NewDialer(command string, log *slog.Logger) Dialer {
	if strings.TrimSpace(command) == "" {
		return nil
	}
	return &CommandDialer{Command: command, Log: log}
}
