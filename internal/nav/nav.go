// Package nav is the navigation core: it decides which screen runs next
// and what data flows into it. Screen functions render and block; all
// routing logic lives in one transition function, the gabagool router
// way, so every (screen, action) pair is handled in a single place.
//
// Two rules hold for every possible intent sequence: screens behind
// authentication (Dashboard, Home, TripDetails, CreateTrip, Emergency)
// are never reached without a session identity, and TripDetails is never
// entered without a selected trip.
package nav

import (
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// Screen identifiers for every view in the application.
const (
	ScreenLanding router.Screen = iota
	ScreenLogin
	ScreenSignup
	ScreenDashboard
	ScreenHome
	ScreenTripDetails
	ScreenCreateTrip
	ScreenEmergency
)

// SessionState is the slice of the session the router needs.
type SessionState interface {
	Authenticated() bool
}

// ListResume preserves list position for back navigation.
type ListResume struct {
	SelectedIndex int
	VisibleStart  int
}

// Inputs: what each screen needs to render.

// LandingInput has no data; the landing screen reads the session itself.
type LandingInput struct{}

// AuthInput parameterizes the login and signup screens.
type AuthInput struct {
	// PrefillEmail keeps the typed email when switching between login
	// and signup.
	PrefillEmail string
}

// DashboardInput carries optional resume state when returning from a
// detail view.
type DashboardInput struct {
	Resume *ListResume
}

// HomeInput carries the search query so it survives round trips into
// trip details.
type HomeInput struct {
	Query  string
	Resume *ListResume
}

// TripDetailsInput carries the selected trip.
type TripDetailsInput struct {
	Trip domain.Trip
}

// CreateTripInput has no data.
type CreateTripInput struct{}

// EmergencyInput optionally ties the alert to the trip it was raised
// from.
type EmergencyInput struct {
	TripID string
}

// Landing screen actions.
type LandingAction int

const (
	LandingActionViewTrips LandingAction = iota
	LandingActionCreateTrip
	LandingActionQuit
)

// LandingResult is returned by the landing screen.
type LandingResult struct {
	Action LandingAction
}

// Auth screen actions.
type AuthAction int

const (
	// AuthActionSignedIn means credentials were accepted and the session
	// now holds an identity.
	AuthActionSignedIn AuthAction = iota
	// AuthActionSwitch toggles between the login and signup screens.
	AuthActionSwitch
	// AuthActionBack abandons authentication.
	AuthActionBack
)

// AuthResult is returned by the login and signup screens.
type AuthResult struct {
	Action AuthAction
	// Email is carried across the login/signup toggle.
	Email string
}

// Trip list screen actions (dashboard and home).
type ListScreenAction int

const (
	ListScreenActionSelectTrip ListScreenAction = iota
	ListScreenActionCreateTrip
	ListScreenActionBrowse // dashboard only: open search view
	ListScreenActionLogout // dashboard only
	ListScreenActionLanding
	ListScreenActionBack // home only: return to dashboard
	ListScreenActionQuit
)

// DashboardResult is returned by the dashboard screen.
type DashboardResult struct {
	Action   ListScreenAction
	Selected *domain.Trip
	Resume   *ListResume
}

// HomeResult is returned by the search/browse screen.
type HomeResult struct {
	Action   ListScreenAction
	Selected *domain.Trip
	Query    string
	Resume   *ListResume
}

// Trip details screen actions.
type TripDetailsAction int

const (
	TripDetailsActionBack TripDetailsAction = iota
	TripDetailsActionEmergency
)

// TripDetailsResult is returned by the trip details screen.
type TripDetailsResult struct {
	Action TripDetailsAction
}

// Create trip screen actions.
type CreateTripAction int

const (
	CreateTripActionBack CreateTripAction = iota
	// CreateTripActionCreated means a trip was stored and the success
	// redirect delay has elapsed.
	CreateTripActionCreated
)

// CreateTripResult is returned by the create trip screen.
type CreateTripResult struct {
	Action CreateTripAction
}

// Emergency screen actions.
type EmergencyAction int

const (
	EmergencyActionBack EmergencyAction = iota
)

// EmergencyResult is returned by the emergency screen.
type EmergencyResult struct {
	Action EmergencyAction
}
