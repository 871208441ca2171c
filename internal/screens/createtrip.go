package screens

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"

	"github.com/travelbuddy/travelbuddy/internal/domain"
	"github.com/travelbuddy/travelbuddy/internal/nav"
	"github.com/travelbuddy/travelbuddy/internal/trips"
)

const (
	maxTravelersCeiling = 8
	priceStep           = 50
	maxPrice            = 2000
)

// The success toast outlives the default expiry so it is still visible
// when the dashboard comes back after the redirect pause.
const successToastDuration = 4000 * time.Millisecond

// CreateTrip is the new trip form. Start submits.
func (s *Screens) CreateTrip(_ any) (any, error) {
	items := []gabagool.ItemWithOptions{
		keyboardItem(s.T("create.field.title"), "", false),
		keyboardItem(s.T("create.field.destination"), "", false),
		keyboardItem(s.T("create.field.description"), "", false),
		keyboardItem(s.T("create.field.start_date"), "", false),
		keyboardItem(s.T("create.field.end_date"), "", false),
		travelersItem(s.T("create.field.max_travelers")),
		priceItem(s.T("create.field.price")),
	}

	for {
		res, err := gabagool.OptionsList(
			s.T("create.title"),
			gabagool.OptionListSettings{
				ConfirmButton: constants.VirtualButtonStart,
				FooterHelpItems: []gabagool.FooterHelpItem{
					{ButtonName: "Start", HelpText: s.T("create.submit")},
					{ButtonName: "A", HelpText: s.T("footer.edit")},
					{ButtonName: "B", HelpText: s.T("footer.back")},
				},
			},
			items,
		)
		if err != nil {
			if gabagool.IsCancelled(err) {
				return nav.CreateTripResult{Action: nav.CreateTripActionBack}, nil
			}
			return nil, err
		}
		if res.Action != gabagool.ListActionConfirmed {
			items = res.Items
			continue
		}

		creator, ok := s.Session.Current()
		if !ok {
			s.flashError(s.T("create.auth_required"))
			return nav.CreateTripResult{Action: nav.CreateTripActionBack}, nil
		}

		draft := trips.Draft{
			Title:          fieldText(res.Items, 0),
			Destination:    fieldText(res.Items, 1),
			Description:    fieldText(res.Items, 2),
			StartDate:      fieldText(res.Items, 3),
			EndDate:        fieldText(res.Items, 4),
			MaxTravelers:   selectedTravelers(res.Items, 5),
			PricePerPerson: selectedPrice(res.Items, 6),
		}

		trip, err := s.Trips.Create(draft, creator)
		if err != nil {
			s.flashError(s.createErrorMessage(err))
			items = res.Items
			continue
		}

		s.Log.Info("trip created", "trip", trip.ID, "destination", trip.Destination)
		s.flashSuccessFor(s.T("create.success"), successToastDuration)
		s.pause(s.Cfg.CreateRedirectDelay())
		return nav.CreateTripResult{Action: nav.CreateTripActionCreated}, nil
	}
}

// travelersItem cycles the capacity between the minimum and the form
// ceiling with left/right.
func travelersItem(label string) gabagool.ItemWithOptions {
	options := make([]gabagool.Option, 0, maxTravelersCeiling-trips.MinTravelers+1)
	for n := trips.MinTravelers; n <= maxTravelersCeiling; n++ {
		options = append(options, gabagool.Option{
			DisplayName: strconv.Itoa(n),
			Value:       n,
			Type:        gabagool.OptionTypeStandard,
		})
	}
	return gabagool.ItemWithOptions{
		Item:    gabagool.MenuItem{Text: label},
		Options: options,
	}
}

// priceItem steps the per person price in 50 dollar increments.
func priceItem(label string) gabagool.ItemWithOptions {
	options := make([]gabagool.Option, 0, maxPrice/priceStep+1)
	for p := 0; p <= maxPrice; p += priceStep {
		options = append(options, gabagool.Option{
			DisplayName: "$" + strconv.Itoa(p),
			Value:       p,
			Type:        gabagool.OptionTypeStandard,
		})
	}
	return gabagool.ItemWithOptions{
		Item:    gabagool.MenuItem{Text: label},
		Options: options,
	}
}

func selectedTravelers(items []gabagool.ItemWithOptions, index int) int {
	if index < 0 || index >= len(items) {
		return 0
	}
	if n, ok := items[index].Value().(int); ok {
		return n
	}
	return 0
}

func selectedPrice(items []gabagool.ItemWithOptions, index int) int {
	if index < 0 || index >= len(items) {
		return -1
	}
	if p, ok := items[index].Value().(int); ok {
		return p
	}
	return -1
}

func (s *Screens) createErrorMessage(err error) string {
	if errors.Is(err, domain.ErrUnauthenticated) {
		return s.T("create.auth_required")
	}
	// The remaining failures are validation problems; the date ordering
	// error gets its own message, the rest share one.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "end date before start date"):
		return s.T("create.error.dates")
	case strings.Contains(msg, "missing"):
		return s.T("create.error.missing_fields")
	}
	return msg
}
