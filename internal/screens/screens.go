// Package screens renders the application views with gabagool widgets.
// Each screen function blocks until the user acts and returns a result
// for the navigation flow; no screen ever decides where to go next.
package screens

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/travelbuddy/travelbuddy/internal/alerts"
	"github.com/travelbuddy/travelbuddy/internal/assistant"
	"github.com/travelbuddy/travelbuddy/internal/chat"
	"github.com/travelbuddy/travelbuddy/internal/config"
	"github.com/travelbuddy/travelbuddy/internal/geo"
	"github.com/travelbuddy/travelbuddy/internal/icons"
	"github.com/travelbuddy/travelbuddy/internal/nav"
	"github.com/travelbuddy/travelbuddy/internal/notify"
	"github.com/travelbuddy/travelbuddy/internal/sched"
	"github.com/travelbuddy/travelbuddy/internal/session"
	"github.com/travelbuddy/travelbuddy/internal/text"
	"github.com/travelbuddy/travelbuddy/internal/trips"
)

// Deps bundles everything the screens need.
type Deps struct {
	Cfg       config.Config
	Catalog   *text.Catalog
	Icons     *icons.Cache
	Session   *session.Session
	Trips     *trips.Store
	Alerts    *alerts.Store
	Assistant *assistant.Engine
	Queue     *sched.Queue
	Notify    *notify.Center
	Dialer    alerts.Dialer
	Locator   geo.Locator
	Log       *slog.Logger
}

// Screens holds per-run UI state on top of the shared dependencies.
type Screens struct {
	Deps

	// chats lazily creates one chat transcript per trip and keeps it
	// alive across screen visits.
	chats map[string]*chat.Session

	// joined remembers which trips the current run has paid for, so
	// the join action cannot be repeated.
	joined map[string]bool
}

// New builds the screen set.
func New(deps Deps) *Screens {
	return &Screens{
		Deps:   deps,
		chats:  make(map[string]*chat.Session),
		joined: make(map[string]bool),
	}
}

// Register wires every screen into the router.
func (s *Screens) Register(r *router.Router) {
	r.Register(nav.ScreenLanding, s.Landing)
	r.Register(nav.ScreenLogin, s.Login)
	r.Register(nav.ScreenSignup, s.Signup)
	r.Register(nav.ScreenDashboard, s.Dashboard)
	r.Register(nav.ScreenHome, s.Home)
	r.Register(nav.ScreenTripDetails, s.TripDetails)
	r.Register(nav.ScreenCreateTrip, s.CreateTrip)
	r.Register(nav.ScreenEmergency, s.Emergency)
}

// Shutdown closes the chat transcripts.
func (s *Screens) Shutdown() {
	for _, c := range s.chats {
		c.Close()
	}
}

// T resolves a message by ID.
func (s *Screens) T(id string) string {
	return s.Catalog.T(id)
}

// Tf resolves a templated message.
func (s *Screens) Tf(id string, data map[string]any) string {
	return s.Catalog.Tf(id, data)
}

// chatFor returns the transcript for the trip, creating it on first use.
func (s *Screens) chatFor(tripID string) *chat.Session {
	if c, ok := s.chats[tripID]; ok {
		return c
	}
	c := chat.NewSession(tripID, s.Assistant, s.Queue, chat.WithReplyDelay(s.Cfg.ReplyDelay()))
	s.chats[tripID] = c
	return c
}

// iconPath rasterizes a bundled icon, logging instead of failing when
// artwork is unavailable.
func (s *Screens) iconPath(name string, size int) string {
	if s.Icons == nil {
		return ""
	}
	path, err := s.Icons.Path(name, size)
	if err != nil {
		s.Log.Warn("icon unavailable", "icon", name, "error", err)
		return ""
	}
	return path
}

// flash records a toast in the notification center and shows it as an
// acknowledged modal. A zero duration uses the center's default expiry.
func (s *Screens) flash(kind string, message string, d time.Duration) {
	title := s.T("notify." + kind)
	if kind == "error" {
		s.Notify.Error(title, message, d)
	} else {
		s.Notify.Success(title, message, d)
	}
	_, err := gabagool.SelectionMessage(
		message,
		[]gabagool.SelectionOption{{DisplayName: "OK", Value: "ok"}},
		[]gabagool.FooterHelpItem{{ButtonName: "A", HelpText: s.T("footer.confirm")}},
		gabagool.SelectionMessageSettings{},
	)
	if err != nil && !gabagool.IsCancelled(err) {
		s.Log.Error("notification modal failed", "error", err)
	}
}

func (s *Screens) flashError(message string) {
	s.flash("error", message, 0)
}

func (s *Screens) flashSuccess(message string) {
	s.flash("success", message, 0)
}

func (s *Screens) flashSuccessFor(message string, d time.Duration) {
	s.flash("success", message, d)
}

// pause blocks for d through the event queue, so the delay is ordered
// with the other timer callbacks. The fallback arm covers a queue that
// was closed underneath us.
func (s *Screens) pause(d time.Duration) {
	done := make(chan struct{})
	s.Queue.After(d, func() { close(done) })
	select {
	case <-done:
	case <-time.After(d + 250*time.Millisecond):
	}
}

// accentColor converts the configured 0xRRGGBB accent into an opaque
// SDL color for detail screen titles.
func (s *Screens) accentColor() sdl.Color {
	c := s.Cfg.AccentColor
	return sdl.Color{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255,
	}
}

// applyAccent tints the detail screen title with the configured accent.
// A zero accent keeps the framework default.
func (s *Screens) applyAccent(options *gabagool.DetailScreenOptions) {
	if s.Cfg.AccentColor != 0 {
		options.TitleColor = s.accentColor()
	}
}

// travelersLine formats trip capacity for lists and detail views.
func (s *Screens) travelersLine(current, max int) string {
	return s.Tf("trip.travelers", map[string]any{"Current": current, "Max": max})
}

func dollars(amount int) string {
	return fmt.Sprintf("$%d", amount)
}
