package models

import "github.com/google/uuid"

// Session holds the authenticated user for one interactive run. It is an
// explicit handle passed to every operation that needs authentication,
// so independent sessions (and tests) never interfere with each other.
type Session struct {
	ID   uuid.UUID `json:"id"`
	User *User     `json:"user,omitempty"`
}

// NewSession creates a session for the given user.
func NewSession(user *User) *Session {
	return &Session{ID: uuid.New(), User: user}
}

// Authenticated reports whether the session currently carries a user.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// Clear logs the user out of the session. Safe to call on an already
// anonymous session.
func (s *Session) Clear() {
	if s != nil {
		s.User = nil
	}
}
