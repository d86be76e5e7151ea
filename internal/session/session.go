// Package session supplies the identity of the signed-in user.
//
// Authentication lives outside fitdash. Components never look the user up
// themselves; they receive a Provider (or a resolved Session) explicitly.
package session

import "strings"

// Session identifies the user whose data is shown.
type Session struct {
	UserID string
}

// Valid reports whether the session carries a usable user identifier.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.UserID) != ""
}

// Provider returns the current session. An invalid Session means nobody is
// signed in.
type Provider interface {
	Current() Session
}

// Static is a Provider that always returns the same user.
type Static Session

// Current implements Provider.
func (s Static) Current() Session {
	return Session{UserID: strings.TrimSpace(s.UserID)}
}

// Anonymous is the provider used when no user is configured.
var Anonymous Provider = Static{}
