// Package auth is the session gate in front of the record store. It tracks
// the single logged-in identity and answers role checks for guarded screens.
package auth

import (
	"fmt"

	"github.com/google/uuid"

	"autorepair/models"
	"autorepair/store"
)

// Session is the in-memory record of the authenticated operator. It lives for
// one login and is never persisted.
type Session struct {
	ID   uuid.UUID
	User models.User
}

func (s *Session) Role() models.Role {
	return s.User.Role
}

func (s *Session) IsAdmin() bool {
	return s.User.Role == models.RoleAdmin
}

// Gate wraps the store's credential check. The process holds at most one
// active session at a time; a new login replaces the old one.
type Gate struct {
	store   *store.Store
	current *Session
}

func NewGate(st *store.Store) *Gate {
	return &Gate{store: st}
}

// Login authenticates and replaces the active session. A nil session with a
// nil error means the credentials did not match.
func (g *Gate) Login(username, password string) (*Session, error) {
	user, err := g.store.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	g.current = &Session{ID: uuid.New(), User: *user}
	return g.current, nil
}

// Logout clears the active session. The process keeps running.
func (g *Gate) Logout() {
	g.current = nil
}

// Current returns the active session, or nil when nobody is logged in.
func (g *Gate) Current() *Session {
	return g.current
}

// RequireAdmin guards role-gated operations. The failure is warning-grade:
// the caller keeps its screen and nothing happens.
func (g *Gate) RequireAdmin() error {
	if g.current == nil || !g.current.IsAdmin() {
		return fmt.Errorf("%w: administrator role required", store.ErrForbidden)
	}
	return nil
}
