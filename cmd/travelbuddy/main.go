// TravelBuddy is a travel companion app for handheld devices: browse
// and create group trips, chat with the travel assistant, check
// destination weather, and raise emergency alerts.
package main

import (
	"os"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"

	"github.com/travelbuddy/travelbuddy/internal/alerts"
	"github.com/travelbuddy/travelbuddy/internal/assistant"
	"github.com/travelbuddy/travelbuddy/internal/config"
	"github.com/travelbuddy/travelbuddy/internal/geo"
	"github.com/travelbuddy/travelbuddy/internal/icons"
	"github.com/travelbuddy/travelbuddy/internal/logging"
	"github.com/travelbuddy/travelbuddy/internal/nav"
	"github.com/travelbuddy/travelbuddy/internal/notify"
	"github.com/travelbuddy/travelbuddy/internal/sched"
	"github.com/travelbuddy/travelbuddy/internal/screens"
	"github.com/travelbuddy/travelbuddy/internal/session"
	"github.com/travelbuddy/travelbuddy/internal/text"
	"github.com/travelbuddy/travelbuddy/internal/trips"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger().Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	if cfg.LogPath != "" {
		logging.SetPath(cfg.LogPath)
	}
	logging.SetRawLevel(cfg.LogLevel)
	log := logging.Logger()
	defer logging.Close()

	catalog, err := text.NewCatalog(cfg.Language)
	if err != nil {
		log.Error("message catalog failed", "error", err)
		os.Exit(1)
	}

	iconCache, err := icons.NewCache(cfg.IconCacheDir)
	if err != nil {
		log.Error("icon cache failed", "error", err)
		os.Exit(1)
	}

	gabagool.Init(gabagool.Options{
		WindowTitle:          cfg.WindowTitle,
		ShowBackground:       true,
		PrimaryThemeColorHex: cfg.AccentColor,
		IsNextUI:             cfg.IsNextUI,
		IsCannoli:            cfg.IsCannoli,
		FlipFaceButtons:      cfg.FlipFaceButtons,
		LogPath:              cfg.LogPath,
	})
	defer gabagool.Close()

	queue := sched.NewQueue()
	defer queue.Close()

	center := notify.NewCenter(queue, notify.WithDefaultDuration(cfg.NotificationDuration()))
	defer center.Close()

	sess := session.New()
	sess.Resolve()

	scr := screens.New(screens.Deps{
		Cfg:       cfg,
		Catalog:   catalog,
		Icons:     iconCache,
		Session:   sess,
		Trips:     trips.NewStore(),
		Alerts:    alerts.NewStore(),
		Assistant: assistant.New(),
		Queue:     queue,
		Notify:    center,
		Dialer:    alerts.NewDialer(cfg.DialerCommand, log),
		Locator:   geo.NewLocator(cfg.LocationCommand),
		Log:       log,
	})
	defer scr.Shutdown()

	flow := nav.NewFlow(sess)
	r := router.New()
	scr.Register(r)
	r.OnTransition(flow.Next)

	log.Info("starting", "window", cfg.WindowTitle)
	if err := r.Run(flow.Initial(), flow.InitialInput()); err != nil {
		log.Error("ui loop failed", "error", err)
		os.Exit(1)
	}
	log.Info("exiting")
}
