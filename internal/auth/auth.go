// Package auth defines the identity collaborator. The core treats identity
// as opaque: stored collections are not keyed by user, this device is the
// account.
package auth

import "time"

// User is the session identity exposed by a provider.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Provider exposes the current session user. Implementations may be remote
// identity services; the CLI ships with a local single-user provider.
type Provider interface {
	// CurrentUser returns the signed-in user, or ok=false when signed out.
	CurrentUser() (User, bool)
	// OnAuthChange registers a callback for sign-in/sign-out transitions and
	// returns an unsubscribe function.
	OnAuthChange(fn func(User, bool)) (unsubscribe func())
}

// Local is a device-bound provider: always signed in as the configured
// profile, never changes.
type Local struct {
	user User
}

// NewLocal builds a local provider from the configured profile. An empty name
// falls back to a generic identity so the UI always has something to greet.
func NewLocal(name, email string) *Local {
	if name == "" {
		name = "adventurer"
	}
	return &Local{user: User{ID: "local", Name: name, Email: email}}
}

func (l *Local) CurrentUser() (User, bool) { return l.user, true }

func (l *Local) OnAuthChange(func(User, bool)) func() {
	// Identity never changes on a local device.
	return func() {}
}
