package nav

import (
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// Flow holds the routing state that outlives individual screens: the
// session gate, the currently selected trip, and which auth screen the
// user last toggled to.
type Flow struct {
	session SessionState

	// selected is the trip backing TripDetails. It is set on the
	// select-trip transitions and cleared when details are left.
	selected *domain.Trip

	// showSignup remembers the login/signup toggle across visits.
	showSignup bool

	// pending is the navigation intent the auth gate intercepted, so a
	// successful sign-in lands where the user was headed.
	pending *pendingTarget
}

type pendingTarget struct {
	screen router.Screen
	input  any
}

// NewFlow returns a Flow gated by the given session.
func NewFlow(session SessionState) *Flow {
	return &Flow{session: session}
}

// Initial returns the screen the application starts on.
func (f *Flow) Initial() router.Screen {
	if f.session.Authenticated() {
		return ScreenDashboard
	}
	return ScreenLanding
}

// InitialInput returns the input matching Initial.
func (f *Flow) InitialInput() any {
	if f.session.Authenticated() {
		return DashboardInput{}
	}
	return LandingInput{}
}

// Selected returns the trip backing the current details view, if any.
func (f *Flow) Selected() *domain.Trip {
	return f.selected
}

// authScreen returns whichever auth screen the toggle points at.
func (f *Flow) authScreen() router.Screen {
	if f.showSignup {
		return ScreenSignup
	}
	return ScreenLogin
}

// gate routes to the auth screens instead of target when no identity is
// signed in. Every protected screen goes through it.
func (f *Flow) gate(target router.Screen, input any) (router.Screen, any) {
	if !f.session.Authenticated() {
		f.pending = &pendingTarget{screen: target, input: input}
		return f.authScreen(), AuthInput{}
	}
	if target == ScreenTripDetails {
		if f.selected == nil {
			return ScreenHome, HomeInput{}
		}
		return ScreenTripDetails, TripDetailsInput{Trip: *f.selected}
	}
	return target, input
}

// Next is the transition function wired into the router. It is pure
// with respect to its inputs and the Flow state; screens never route
// themselves.
func (f *Flow) Next(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case ScreenLanding:
		return f.fromLanding(result)
	case ScreenLogin, ScreenSignup:
		return f.fromAuth(from, result)
	case ScreenDashboard:
		return f.fromDashboard(result, stack)
	case ScreenHome:
		return f.fromHome(result, stack)
	case ScreenTripDetails:
		return f.fromTripDetails(result, stack)
	case ScreenCreateTrip:
		return f.fromCreateTrip(result)
	case ScreenEmergency:
		return f.fromEmergency(result, stack)
	}
	return router.ScreenExit, nil
}

func (f *Flow) fromLanding(result any) (router.Screen, any) {
	res, ok := result.(LandingResult)
	if !ok {
		return router.ScreenExit, nil
	}
	switch res.Action {
	case LandingActionViewTrips:
		return f.gate(ScreenDashboard, DashboardInput{})
	case LandingActionCreateTrip:
		return f.gate(ScreenCreateTrip, CreateTripInput{})
	}
	return router.ScreenExit, nil
}

func (f *Flow) fromAuth(from router.Screen, result any) (router.Screen, any) {
	res, ok := result.(AuthResult)
	if !ok {
		return router.ScreenExit, nil
	}
	switch res.Action {
	case AuthActionSignedIn:
		f.showSignup = false
		if p := f.pending; p != nil {
			f.pending = nil
			return f.gate(p.screen, p.input)
		}
		return ScreenDashboard, DashboardInput{}
	case AuthActionSwitch:
		f.showSignup = from == ScreenLogin
		return f.authScreen(), AuthInput{PrefillEmail: res.Email}
	case AuthActionBack:
		f.pending = nil
		return ScreenLanding, LandingInput{}
	}
	return router.ScreenExit, nil
}

func (f *Flow) fromDashboard(result any, stack *router.Stack) (router.Screen, any) {
	res, ok := result.(DashboardResult)
	if !ok {
		return router.ScreenExit, nil
	}
	switch res.Action {
	case ListScreenActionSelectTrip:
		if res.Selected == nil {
			return ScreenDashboard, DashboardInput{Resume: res.Resume}
		}
		f.selected = res.Selected
		stack.Push(ScreenDashboard, DashboardInput{}, res.Resume)
		return f.gate(ScreenTripDetails, nil)
	case ListScreenActionCreateTrip:
		return f.gate(ScreenCreateTrip, CreateTripInput{})
	case ListScreenActionBrowse:
		return f.gate(ScreenHome, HomeInput{})
	case ListScreenActionLogout, ListScreenActionLanding:
		// The screen performs the logout; the flow just drops state.
		f.selected = nil
		f.pending = nil
		stack.Clear()
		return ScreenLanding, LandingInput{}
	case ListScreenActionQuit:
		return router.ScreenExit, nil
	}
	return router.ScreenExit, nil
}

func (f *Flow) fromHome(result any, stack *router.Stack) (router.Screen, any) {
	res, ok := result.(HomeResult)
	if !ok {
		return router.ScreenExit, nil
	}
	switch res.Action {
	case ListScreenActionSelectTrip:
		if res.Selected == nil {
			return ScreenHome, HomeInput{Query: res.Query, Resume: res.Resume}
		}
		f.selected = res.Selected
		stack.Push(ScreenHome, HomeInput{Query: res.Query}, res.Resume)
		return f.gate(ScreenTripDetails, nil)
	case ListScreenActionCreateTrip:
		return f.gate(ScreenCreateTrip, CreateTripInput{})
	case ListScreenActionLanding:
		stack.Clear()
		return ScreenLanding, LandingInput{}
	}
	return f.gate(ScreenDashboard, DashboardInput{})
}

// fromTripDetails always lands back on the dashboard, restoring its
// list position when that is where the trip was picked. Picking from
// the search view also returns to the dashboard; the search entry is
// discarded.
func (f *Flow) fromTripDetails(result any, stack *router.Stack) (router.Screen, any) {
	res, ok := result.(TripDetailsResult)
	if !ok {
		f.selected = nil
		stack.Clear()
		return f.gate(ScreenDashboard, DashboardInput{})
	}
	switch res.Action {
	case TripDetailsActionEmergency:
		tripID := ""
		if f.selected != nil {
			tripID = f.selected.ID
		}
		return f.gate(ScreenEmergency, EmergencyInput{TripID: tripID})
	default:
		f.selected = nil
		entry := stack.Pop()
		in := DashboardInput{}
		if entry != nil && entry.Screen == ScreenDashboard {
			if resume, ok := entry.Resume.(*ListResume); ok {
				in.Resume = resume
			}
		}
		return f.gate(ScreenDashboard, in)
	}
}

// fromCreateTrip lands on the dashboard whether the trip was created or
// the form was abandoned.
func (f *Flow) fromCreateTrip(_ any) (router.Screen, any) {
	return f.gate(ScreenDashboard, DashboardInput{})
}

// fromEmergency drops the selection and lands on the dashboard,
// restoring its list position when the trip was picked there.
func (f *Flow) fromEmergency(result any, stack *router.Stack) (router.Screen, any) {
	f.selected = nil
	if _, ok := result.(EmergencyResult); !ok {
		stack.Clear()
		return f.gate(ScreenDashboard, DashboardInput{})
	}
	entry := stack.Pop()
	in := DashboardInput{}
	if entry != nil && entry.Screen == ScreenDashboard {
		if resume, ok := entry.Resume.(*ListResume); ok {
			in.Resume = resume
		}
	}
	return f.gate(ScreenDashboard, in)
}
