package screens

import (
	"fmt"
	"strings"

	"autorepair/auth"
	"autorepair/models"
	"autorepair/navigator"
	"autorepair/store"
)

// Login authenticates the operator. Success moves to the dashboard; a failed
// match re-prompts on the same screen.
func Login(gate *auth.Gate) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "back" {
			return navigator.Outcome{Event: navigator.EvBack}
		}

		sess, err := gate.Login(strings.TrimSpace(f["username"]), strings.TrimSpace(f["password"]))
		if err != nil {
			return navigator.Outcome{Event: navigator.EvRetry, Message: describe(err)}
		}
		if sess == nil {
			return navigator.Outcome{Event: navigator.EvRetry, Message: "Invalid username or password."}
		}
		return navigator.Outcome{
			Event:   navigator.EvLoggedIn,
			Message: fmt.Sprintf("Welcome, %s (%s)", sess.User.FullName, sess.User.Role),
		}
	}
}

// RegisterClient creates a client account from the registration form and, on
// success, sends the operator to the login screen.
func RegisterClient(st *store.Store) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "back" {
			return navigator.Outcome{Event: navigator.EvBack}
		}

		in := store.NewUser{
			Username: strings.TrimSpace(f["username"]),
			Password: strings.TrimSpace(f["password"]),
			FullName: strings.TrimSpace(f["fullname"]),
			Email:    strings.TrimSpace(f["email"]),
			Phone:    strings.TrimSpace(f["phone"]),
			Photo:    strings.TrimSpace(f["photo"]),
			Role:     models.RoleClient,
		}
		if _, err := st.CreateUser(in); err != nil {
			return stay(describe(err))
		}
		return navigator.Outcome{
			Event:   navigator.EvRegistered,
			Message: "Client registered. Please log in.",
		}
	}
}

// Users is the admin-only management screen: it can remove any account except
// the requester's own.
func Users(st *store.Store, gate *auth.Gate) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "close" {
			return navigator.Outcome{Event: navigator.EvClose}
		}

		sess := gate.Current()
		if sess == nil {
			return stay("Not allowed: no active session.")
		}
		username := strings.TrimSpace(f["username"])
		if username == "" {
			return stay("Select a user to remove.")
		}
		if err := st.DeleteUser(username, &sess.User); err != nil {
			return stay(describe(err))
		}
		return stay(fmt.Sprintf("User %q removed.", username))
	}
}
