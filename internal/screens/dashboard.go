package screens

import (
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/nav"
)

// Dashboard lists every trip. A opens details, X shows weather, Y opens
// the trip chat, Start creates a trip.
func (s *Screens) Dashboard(input any) (any, error) {
	in, _ := input.(nav.DashboardInput)

	resume := in.Resume
	for {
		list := s.Trips.List()
		items := s.tripItems(list)
		items = append(items,
			clickableItem(s.T("dashboard.browse"), "browse", s.iconPath("pin", 96)),
			clickableItem(s.T("dashboard.logout"), "logout", ""),
		)

		settings := gabagool.OptionListSettings{
			ActionButton:          constants.VirtualButtonX,
			SecondaryActionButton: constants.VirtualButtonY,
			ConfirmButton:         constants.VirtualButtonStart,
			FooterHelpItems: []gabagool.FooterHelpItem{
				{ButtonName: "A", HelpText: s.T("footer.details")},
				{ButtonName: "X", HelpText: s.T("footer.weather")},
				{ButtonName: "Y", HelpText: s.T("footer.chat")},
				{ButtonName: "Start", HelpText: s.T("footer.create")},
			},
		}
		if resume != nil {
			settings.InitialSelectedIndex = resume.SelectedIndex
			settings.VisibleStartIndex = resume.VisibleStart
		}
		resume = nil

		res, err := gabagool.OptionsList(s.T("dashboard.title"), settings, items)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.DashboardResult{Action: nav.ListScreenActionLanding}, nil
			}
			return nil, err
		}
		if res.Selected < 0 {
			continue
		}

		switch res.Action {
		case gabagool.ListActionConfirmed:
			return nav.DashboardResult{Action: nav.ListScreenActionCreateTrip}, nil

		case gabagool.ListActionSelected:
			if res.Selected < len(list) {
				trip := list[res.Selected]
				return nav.DashboardResult{
					Action:   nav.ListScreenActionSelectTrip,
					Selected: &trip,
					Resume:   &nav.ListResume{SelectedIndex: res.Selected, VisibleStart: res.VisibleStartIndex},
				}, nil
			}
			switch items[res.Selected].Options[0].Value {
			case "browse":
				return nav.DashboardResult{Action: nav.ListScreenActionBrowse}, nil
			case "logout":
				s.Session.Logout()
				s.Log.Info("signed out")
				return nav.DashboardResult{Action: nav.ListScreenActionLogout}, nil
			}

		case gabagool.ListActionTriggered:
			if res.Selected < len(list) {
				s.showWeather(list[res.Selected].Destination)
			}
			resume = &nav.ListResume{SelectedIndex: res.Selected, VisibleStart: res.VisibleStartIndex}

		case gabagool.ListActionSecondaryTriggered:
			if res.Selected < len(list) {
				s.chatOverlay(list[res.Selected])
			}
			resume = &nav.ListResume{SelectedIndex: res.Selected, VisibleStart: res.VisibleStartIndex}
		}
	}
}

// Home is the browse and search view. X opens the search keyboard.
func (s *Screens) Home(input any) (any, error) {
	in, _ := input.(nav.HomeInput)

	query := in.Query
	resume := in.Resume
	for {
		list := s.Trips.Search(query)
		items := s.tripItems(list)

		title := s.T("home.title")
		if query != "" {
			title = title + " - " + query
		}
		if len(items) == 0 {
			items = append(items, clickableItem(s.T("home.no_results"), "none", ""))
		}

		settings := gabagool.OptionListSettings{
			ActionButton:  constants.VirtualButtonX,
			ConfirmButton: constants.VirtualButtonStart,
			FooterHelpItems: []gabagool.FooterHelpItem{
				{ButtonName: "A", HelpText: s.T("footer.details")},
				{ButtonName: "X", HelpText: s.T("footer.search")},
				{ButtonName: "Start", HelpText: s.T("footer.create")},
				{ButtonName: "B", HelpText: s.T("footer.back")},
			},
		}
		if resume != nil {
			settings.InitialSelectedIndex = resume.SelectedIndex
			settings.VisibleStartIndex = resume.VisibleStart
		}
		resume = nil

		res, err := gabagool.OptionsList(title, settings, items)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.HomeResult{Action: nav.ListScreenActionBack, Query: query}, nil
			}
			return nil, err
		}

		switch res.Action {
		case gabagool.ListActionConfirmed:
			return nav.HomeResult{Action: nav.ListScreenActionCreateTrip, Query: query}, nil

		case gabagool.ListActionTriggered:
			kb, err := gabagool.Keyboard(query, s.T("home.search_prompt"))
			if err == nil {
				query = kb.Text
			}

		case gabagool.ListActionSelected:
			if res.Selected >= 0 && res.Selected < len(list) {
				trip := list[res.Selected]
				return nav.HomeResult{
					Action:   nav.ListScreenActionSelectTrip,
					Selected: &trip,
					Query:    query,
					Resume:   &nav.ListResume{SelectedIndex: res.Selected, VisibleStart: res.VisibleStartIndex},
				}, nil
			}
		}
	}
}

// tripItems renders trips as menu rows.
func (s *Screens) tripItems(list []domain.Trip) []gabagool.ItemWithOptions {
	pin := s.iconPath("pin", 96)
	items := make([]gabagool.ItemWithOptions, 0, len(list)+2)
	for _, trip := range list {
		items = append(items, gabagool.ItemWithOptions{
			Item: gabagool.MenuItem{
				Text:          trip.Title + " - " + trip.Destination,
				Metadata:      trip.ID,
				ImageFilename: pin,
			},
			Options: []gabagool.Option{
				{
					DisplayName: s.travelersLine(trip.CurrentTravelers, trip.MaxTravelers),
					Value:       trip.ID,
					Type:        gabagool.OptionTypeClickable,
				},
			},
		})
	}
	return items
}
