// Package session identifies whose progress a request operates on. The
// server is single-machine but not hard-wired to one profile: callers
// pass an explicit Session instead of relying on package-level state.
package session

// DefaultProfileID is used when a caller does not name a profile.
const DefaultProfileID = "local"

// Session scopes progress, exchange logs and achievements to a profile.
type Session struct {
	ProfileID string
}

// Local returns the default single-machine session.
func Local() Session {
	return Session{ProfileID: DefaultProfileID}
}

// Profile returns the profile id, falling back to DefaultProfileID for
// a zero Session.
func (s Session) Profile() string {
	if s.ProfileID == "" {
		return DefaultProfileID
	}
	return s.ProfileID
}
