// Package navigator is the screen state machine. It decides which screen is
// reachable from which, applies the admin guard, and dispatches form input to
// the handler registered for the current screen.
package navigator

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"autorepair/auth"
)

type Screen string

const (
	Welcome   Screen = "welcome"
	Login     Screen = "login"
	Register  Screen = "register"
	Dashboard Screen = "dashboard"
	Parts     Screen = "parts"
	Tools     Screen = "tools"
	Users     Screen = "users" // admin only
	Services  Screen = "services"
	Invoices  Screen = "invoices"
	Reports   Screen = "reports"
	Flowchart Screen = "flowchart"
	Wireframe Screen = "wireframe"
	About     Screen = "about"
	Settings  Screen = "settings"
	Help      Screen = "help"
)

type Event string

const (
	// EvNone keeps the current screen; handlers return it after an action
	// that only needs a message.
	EvNone Event = ""

	EvGoLogin    Event = "go-login"
	EvGoRegister Event = "go-register"
	EvBack       Event = "back"
	EvLoggedIn   Event = "logged-in"
	EvRetry      Event = "retry"
	EvRegistered Event = "registered"

	EvOpenParts     Event = "open-parts"
	EvOpenTools     Event = "open-tools"
	EvOpenUsers     Event = "open-users"
	EvOpenServices  Event = "open-services"
	EvOpenInvoices  Event = "open-invoices"
	EvOpenReports   Event = "open-reports"
	EvOpenFlowchart Event = "open-flowchart"
	EvOpenWireframe Event = "open-wireframe"
	EvOpenAbout     Event = "open-about"
	EvOpenSettings  Event = "open-settings"
	EvOpenHelp      Event = "open-help"

	EvClose  Event = "close"
	EvLogout Event = "logout"
)

// transitions is the full screen graph. Events missing from a screen's row
// are unreachable from it.
var transitions = map[Screen]map[Event]Screen{
	Welcome:  {EvGoLogin: Login, EvGoRegister: Register},
	Login:    {EvLoggedIn: Dashboard, EvRetry: Login, EvBack: Welcome},
	Register: {EvRegistered: Login, EvBack: Welcome},
	Dashboard: {
		EvOpenParts:     Parts,
		EvOpenTools:     Tools,
		EvOpenUsers:     Users,
		EvOpenServices:  Services,
		EvOpenInvoices:  Invoices,
		EvOpenReports:   Reports,
		EvOpenFlowchart: Flowchart,
		EvOpenWireframe: Wireframe,
		EvOpenAbout:     About,
		EvOpenSettings:  Settings,
		EvOpenHelp:      Help,
		EvLogout:        Welcome,
	},
	Parts:     {EvClose: Dashboard},
	Tools:     {EvClose: Dashboard},
	Users:     {EvClose: Dashboard},
	Services:  {EvClose: Dashboard},
	Invoices:  {EvClose: Dashboard},
	Reports:   {EvClose: Dashboard},
	Flowchart: {EvClose: Dashboard},
	Wireframe: {EvClose: Dashboard},
	About:     {EvClose: Dashboard},
	Settings:  {EvClose: Dashboard},
	Help:      {EvClose: Dashboard},
}

// Form carries the raw field values a screen collected.
type Form map[string]string

// Outcome is what a screen handler produces: the event to feed back into the
// machine and a message for the operator.
type Outcome struct {
	Event   Event
	Message string
}

type Handler func(Form) Outcome

var ErrNoTransition = errors.New("no transition for event")

type Navigator struct {
	gate     *auth.Gate
	log      zerolog.Logger
	current  Screen
	handlers map[Screen]Handler
}

// New starts the machine on the welcome screen.
func New(gate *auth.Gate, log zerolog.Logger) *Navigator {
	return &Navigator{
		gate:     gate,
		log:      log,
		current:  Welcome,
		handlers: make(map[Screen]Handler),
	}
}

func (n *Navigator) Register(s Screen, h Handler) {
	n.handlers[s] = h
}

func (n *Navigator) Current() Screen {
	return n.current
}

// Trigger applies an event to the current screen. A guarded target that
// fails its check keeps the current screen and reports the refusal.
func (n *Navigator) Trigger(ev Event) (Screen, error) {
	if ev == EvNone {
		return n.current, nil
	}
	next, ok := transitions[n.current][ev]
	if !ok {
		return n.current, fmt.Errorf("%w: %q from %q", ErrNoTransition, ev, n.current)
	}

	if next == Users {
		if err := n.gate.RequireAdmin(); err != nil {
			n.log.Warn().
				Str("screen", string(n.current)).
				Msg("user management refused: administrator role required")
			return n.current, err
		}
	}

	if ev == EvLogout {
		n.gate.Logout()
		n.log.Info().Msg("session closed")
	}

	n.current = next
	return n.current, nil
}

// Dispatch runs the current screen's handler and feeds the resulting event
// back into the machine.
func (n *Navigator) Dispatch(form Form) (Outcome, error) {
	h, ok := n.handlers[n.current]
	if !ok {
		return Outcome{}, fmt.Errorf("screen %q has no handler", n.current)
	}

	start := time.Now()
	out := h(form)
	elapsed := time.Since(start)

	n.log.Debug().
		Str("screen", string(n.current)).
		Str("event", string(out.Event)).
		Dur("elapsed", elapsed).
		Msg("screen action")
	if elapsed > 200*time.Millisecond {
		n.log.Warn().
			Str("screen", string(n.current)).
			Dur("elapsed", elapsed).
			Msg("slow screen action")
	}

	_, err := n.Trigger(out.Event)
	return out, err
}
