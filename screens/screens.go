// Package screens holds the form handlers behind each interactive screen.
// Handlers are stateless: they take the collected field values, invoke the
// store through the gate where role-gated, and return a navigation outcome.
// How the forms are drawn is up to the shell.
package screens

import (
	"errors"

	"autorepair/auth"
	"autorepair/navigator"
	"autorepair/store"
)

// RegisterAll wires every form screen's handler into the navigator.
func RegisterAll(nav *navigator.Navigator, st *store.Store, gate *auth.Gate, logoPath string) {
	nav.Register(navigator.Login, Login(gate))
	nav.Register(navigator.Register, RegisterClient(st))
	nav.Register(navigator.Parts, Parts(st))
	nav.Register(navigator.Tools, Tools(st))
	nav.Register(navigator.Users, Users(st, gate))
	nav.Register(navigator.Services, Services(st))
	nav.Register(navigator.Invoices, Invoices(st))
	nav.Register(navigator.Settings, Settings(logoPath))
}

// describe turns a store failure into the message shown next to the form.
func describe(err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		return "That key is already in use. Choose another."
	case errors.Is(err, store.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, store.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, store.ErrForbidden):
		return "Not allowed: " + err.Error()
	default:
		return "Unexpected error: " + err.Error()
	}
}

// stay keeps the current screen open with a message.
func stay(msg string) navigator.Outcome {
	return navigator.Outcome{Event: navigator.EvNone, Message: msg}
}
