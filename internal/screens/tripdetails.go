package screens

import (
	"strconv"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/nav"
	"github.com/travelbuddy/travelbuddy/internal/weather"
)

// TripDetails shows one trip in full. A opens the actions menu.
func (s *Screens) TripDetails(input any) (any, error) {
	in, ok := input.(nav.TripDetailsInput)
	if !ok {
		return nav.TripDetailsResult{Action: nav.TripDetailsActionBack}, nil
	}
	trip := in.Trip

	for {
		options := gabagool.DefaultInfoScreenOptions()
		options.AllowAction = true
		options.ActionButton = constants.VirtualButtonA
		s.applyAccent(&options)
		options.Sections = s.tripSections(trip)

		res, err := gabagool.DetailScreen(trip.Title, options, []gabagool.FooterHelpItem{
			{ButtonName: "A", HelpText: s.T("footer.select")},
			{ButtonName: "B", HelpText: s.T("footer.back")},
		})
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.TripDetailsResult{Action: nav.TripDetailsActionBack}, nil
			}
			return nil, err
		}
		if res.Action != gabagool.DetailActionTriggered && res.Action != gabagool.DetailActionConfirmed {
			return nav.TripDetailsResult{Action: nav.TripDetailsActionBack}, nil
		}

		action, done := s.tripActions(trip)
		if done {
			return action, nil
		}
	}
}

// tripActions runs the actions menu. It returns done=false when the
// details view should simply re-render.
func (s *Screens) tripActions(trip domain.Trip) (nav.TripDetailsResult, bool) {
	res, err := gabagool.SelectionMessage(
		trip.Title,
		[]gabagool.SelectionOption{
			{DisplayName: s.T("details.join"), Value: "join"},
			{DisplayName: s.T("details.open_chat"), Value: "chat"},
			{DisplayName: s.T("details.weather"), Value: "weather"},
			{DisplayName: s.T("details.sos"), Value: "sos"},
		},
		[]gabagool.FooterHelpItem{
			{ButtonName: "A", HelpText: s.T("footer.select")},
			{ButtonName: "B", HelpText: s.T("footer.back")},
		},
		gabagool.SelectionMessageSettings{},
	)
	if err != nil {
		return nav.TripDetailsResult{}, false
	}

	switch res.SelectedValue {
	case "join":
		s.joinAndPay(trip)
	case "chat":
		s.chatOverlay(trip)
	case "weather":
		s.showWeather(trip.Destination)
	case "sos":
		return nav.TripDetailsResult{Action: nav.TripDetailsActionEmergency}, true
	}
	return nav.TripDetailsResult{}, false
}

// joinAndPay runs the simulated payment confirmation.
func (s *Screens) joinAndPay(trip domain.Trip) {
	if s.joined[trip.ID] {
		s.flashSuccess(s.T("payment.already_joined"))
		return
	}
	if trip.Status == domain.TripStatusFull || trip.CurrentTravelers >= trip.MaxTravelers {
		s.flashError(s.T("payment.full"))
		return
	}

	res, err := gabagool.SelectionMessage(
		s.Tf("payment.confirm", map[string]any{"Amount": trip.PricePerPerson, "Title": trip.Title}),
		[]gabagool.SelectionOption{
			{DisplayName: s.T("payment.pay"), Value: "pay"},
			{DisplayName: s.T("payment.cancel"), Value: "cancel"},
		},
		[]gabagool.FooterHelpItem{
			{ButtonName: "A", HelpText: s.T("footer.confirm")},
			{ButtonName: "B", HelpText: s.T("footer.back")},
		},
		gabagool.SelectionMessageSettings{},
	)
	if err != nil || res.SelectedValue != "pay" {
		return
	}
	s.joined[trip.ID] = true
	s.Log.Info("payment simulated", "trip", trip.ID, "amount", trip.PricePerPerson)
	s.flashSuccess(s.T("payment.success"))
}

// showWeather renders the destination weather as an info screen.
func (s *Screens) showWeather(destination string) {
	info := weather.Lookup(destination)

	metadata := []gabagool.MetadataItem{
		{Label: s.T("weather.temperature"), Value: formatTemp(info.Temperature)},
		{Label: s.T("weather.condition"), Value: info.Condition},
		{Label: s.T("weather.humidity"), Value: formatPercent(info.Humidity)},
		{Label: s.T("weather.wind"), Value: formatWind(info.WindSpeed)},
	}

	sections := []gabagool.Section{}
	if icon := s.iconPath("weather", 96); icon != "" {
		sections = append(sections, gabagool.NewImageSection("", icon, 96, 96, constants.TextAlignCenter))
	}
	sections = append(sections, gabagool.NewInfoSection("", metadata))
	if info.Alert != nil {
		sections = append(sections, gabagool.NewDescriptionSection(s.T("weather.advisory"), info.Alert.Message))
	}

	options := gabagool.DefaultInfoScreenOptions()
	s.applyAccent(&options)
	options.Sections = sections

	title := s.Tf("weather.title", map[string]any{"Destination": info.Destination})
	_, err := gabagool.DetailScreen(title, options, []gabagool.FooterHelpItem{
		{ButtonName: "B", HelpText: s.T("footer.back")},
	})
	if err != nil && !gabagool.IsCancelled(err) {
		s.Log.Error("weather screen failed", "error", err)
	}
}

// tripSections lays out the details view.
func (s *Screens) tripSections(trip domain.Trip) []gabagool.Section {
	sections := []gabagool.Section{}
	if icon := s.iconPath("plane", 128); icon != "" {
		sections = append(sections, gabagool.NewImageSection("", icon, 128, 128, constants.TextAlignCenter))
	}
	sections = append(sections,
		gabagool.NewInfoSection("", []gabagool.MetadataItem{
			{Label: s.T("create.field.destination"), Value: trip.Destination},
			{Label: s.T("create.field.start_date"), Value: trip.StartDate},
			{Label: s.T("create.field.end_date"), Value: trip.EndDate},
			{Label: s.T("details.status"), Value: statusLabel(s, trip.Status)},
			{Label: s.T("create.field.max_travelers"), Value: s.travelersLine(trip.CurrentTravelers, trip.MaxTravelers)},
			{Label: s.T("create.field.price"), Value: dollars(trip.PricePerPerson)},
			{Label: s.T("details.organizer"), Value: trip.CreatorName},
		}),
		gabagool.NewDescriptionSection(s.T("create.field.description"), trip.Description),
	)
	return sections
}

func statusLabel(s *Screens, status domain.TripStatus) string {
	if status == domain.TripStatusFull {
		return s.T("trip.status.full")
	}
	return s.T("trip.status.open")
}

func formatTemp(c int) string    { return strconv.Itoa(c) + "°C" }
func formatPercent(p int) string { return strconv.Itoa(p) + "%" }
func formatWind(kmh int) string  { return strconv.Itoa(kmh) + " km/h" }
