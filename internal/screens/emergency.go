package screens

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"

	"github.com/travelbuddy/travelbuddy/internal/alerts"
	"github.com/travelbuddy/travelbuddy/internal/geo"
	"github.com/travelbuddy/travelbuddy/internal/nav"
)

const locateTimeout = 15 * time.Second

// Emergency is the SOS screen: emergency contacts to dial, a GPS
// locate action, and the alert submission form.
func (s *Screens) Emergency(input any) (any, error) {
	in, _ := input.(nav.EmergencyInput)

	location := ""
	message := ""
	contacts := alerts.Contacts()
	phoneIcon := s.iconPath("phone", 96)
	sosIcon := s.iconPath("sos", 96)

	for {
		items := make([]gabagool.ItemWithOptions, 0, len(contacts)+4)
		for _, contact := range contacts {
			items = append(items, gabagool.ItemWithOptions{
				Item: gabagool.MenuItem{Text: contact.Name, ImageFilename: phoneIcon},
				Options: []gabagool.Option{
					{DisplayName: contact.Number, Value: contact.Number, Type: gabagool.OptionTypeClickable},
				},
			})
		}

		locationLabel := location
		if locationLabel == "" {
			locationLabel = s.T("emergency.locate")
		}
		items = append(items,
			clickableItem(s.T("emergency.location")+": "+locationLabel, "locate", ""),
			gabagool.ItemWithOptions{
				Item: gabagool.MenuItem{Text: s.T("emergency.message")},
				Options: []gabagool.Option{
					{
						DisplayName:    message,
						Value:          message,
						Type:           gabagool.OptionTypeKeyboard,
						KeyboardPrompt: message,
					},
				},
			},
			clickableItem(s.T("emergency.send"), "send", sosIcon),
			clickableItem(s.T("emergency.recent"), "recent", ""),
		)
		messageIndex := len(items) - 3

		res, err := gabagool.OptionsList(
			s.T("emergency.title"),
			gabagool.OptionListSettings{
				FooterHelpItems: []gabagool.FooterHelpItem{
					{ButtonName: "A", HelpText: s.T("footer.select")},
					{ButtonName: "B", HelpText: s.T("footer.back")},
				},
			},
			items,
		)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.EmergencyResult{Action: nav.EmergencyActionBack}, nil
			}
			return nil, err
		}

		message = fieldText(res.Items, messageIndex)
		if res.Action != gabagool.ListActionSelected || res.Selected < 0 {
			continue
		}

		if res.Selected < len(contacts) {
			s.dialContact(contacts[res.Selected])
			continue
		}

		switch res.Items[res.Selected].Options[0].Value {
		case "locate":
			ctx, cancel := context.WithTimeout(context.Background(), locateTimeout)
			location = geo.Resolve(ctx, s.Locator)
			cancel()
		case "send":
			s.sendAlert(in.TripID, location, message)
		case "recent":
			s.showRecentAlerts()
		}
	}
}

// dialContact hands the number to the configured dialer.
func (s *Screens) dialContact(contact alerts.Contact) {
	if s.Dialer == nil {
		s.flashError(s.T("emergency.no_dialer"))
		return
	}
	if err := s.Dialer.Dial(context.Background(), contact); err != nil {
		s.Log.Error("dial failed", "contact", contact.Name, "error", err)
		s.flashError(err.Error())
		return
	}
	s.Log.Info("dialed emergency contact", "contact", contact.Name)
}

// sendAlert validates and submits the emergency alert.
func (s *Screens) sendAlert(tripID, location, message string) {
	identity, ok := s.Session.Current()
	if !ok {
		return
	}
	req := alerts.Request{
		UserID:   identity.ID,
		UserName: identity.FullName,
		TripID:   tripID,
		Location: location,
		Message:  message,
	}
	if lat, lon, ok := parseFixText(location); ok {
		req.Latitude = &lat
		req.Longitude = &lon
	}

	if _, err := s.Alerts.Submit(req); err != nil {
		s.flashError(s.T("emergency.validation"))
		return
	}
	s.Log.Warn("emergency alert sent", "user", identity.ID, "trip", tripID, "location", location)
	s.flashSuccess(s.T("emergency.sent"))
}

// showRecentAlerts renders the alert history as an info screen.
func (s *Screens) showRecentAlerts() {
	recent := s.Alerts.Recent()

	metadata := make([]gabagool.MetadataItem, 0, len(recent))
	for _, alert := range recent {
		metadata = append(metadata, gabagool.MetadataItem{
			Label: alert.UserName + " (" + string(alert.Status) + ")",
			Value: alert.Location,
		})
	}

	options := gabagool.DefaultInfoScreenOptions()
	s.applyAccent(&options)
	options.Sections = []gabagool.Section{gabagool.NewInfoSection("", metadata)}

	_, err := gabagool.DetailScreen(s.T("emergency.recent"), options, []gabagool.FooterHelpItem{
		{ButtonName: "B", HelpText: s.T("footer.back")},
	})
	if err != nil && !gabagool.IsCancelled(err) {
		s.Log.Error("recent alerts screen failed", "error", err)
	}
}

// parseFixText recovers coordinates from a "lat, lon" location string.
func parseFixText(location string) (float64, float64, bool) {
	parts := strings.SplitN(location, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
