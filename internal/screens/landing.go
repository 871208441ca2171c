package screens

import (
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"

	"github.com/travelbuddy/travelbuddy/internal/nav"
)

// Landing is the entry menu shown before (and after) signing in.
func (s *Screens) Landing(_ any) (any, error) {
	planeIcon := s.iconPath("plane", 96)

	for {
		items := []gabagool.ItemWithOptions{
			taglineItem(s.T("landing.tagline"), planeIcon),
			clickableItem(s.T("landing.view_trips"), "view", planeIcon),
			clickableItem(s.T("landing.create_trip"), "create", planeIcon),
		}
		if s.Session.Authenticated() {
			items = append(items, clickableItem(s.T("dashboard.logout"), "logout", ""))
		}
		items = append(items, clickableItem(s.T("landing.quit"), "quit", ""))

		res, err := gabagool.OptionsList(
			s.T("app.title"),
			gabagool.OptionListSettings{
				InitialSelectedIndex: 1,
				FooterHelpItems: []gabagool.FooterHelpItem{
					{ButtonName: "A", HelpText: s.T("footer.select")},
				},
			},
			items,
		)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.LandingResult{Action: nav.LandingActionQuit}, nil
			}
			return nil, err
		}
		if res.Action != gabagool.ListActionSelected || res.Selected < 0 {
			continue
		}
		switch items[res.Selected].Options[0].Value {
		case "view":
			return nav.LandingResult{Action: nav.LandingActionViewTrips}, nil
		case "create":
			return nav.LandingResult{Action: nav.LandingActionCreateTrip}, nil
		case "logout":
			s.Session.Logout()
			s.Log.Info("signed out")
		case "quit":
			return nav.LandingResult{Action: nav.LandingActionQuit}, nil
		}
	}
}

// clickableItem builds a plain menu row that fires on A.
func clickableItem(label, value, imagePath string) gabagool.ItemWithOptions {
	return gabagool.ItemWithOptions{
		Item: gabagool.MenuItem{Text: label, ImageFilename: imagePath},
		Options: []gabagool.Option{
			{Type: gabagool.OptionTypeClickable, Value: value},
		},
	}
}

// taglineItem is an inert header row; A does nothing on it.
func taglineItem(text, imagePath string) gabagool.ItemWithOptions {
	return gabagool.ItemWithOptions{
		Item: gabagool.MenuItem{Text: text, ImageFilename: imagePath, NotMultiSelectable: true},
		Options: []gabagool.Option{
			{Type: gabagool.OptionTypeStandard},
		},
	}
}
