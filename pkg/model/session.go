package model

import "time"

// Session pairs an authenticated identity with its credential.
// User and Token are always set together and cleared together; a
// session with one but not the other never exists.
type Session struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	Refresh   string    `json:"refresh,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Role returns the effective role of the session's user.
func (s *Session) Role() Role {
	return s.User.EffectiveRole()
}
