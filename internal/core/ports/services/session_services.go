package services

import (
	"context"

	"github.com/fintrackpro/fintrack_app/internal/core/session"
)

// SessionSvcFacade manages login identity and session lifecycle. Login and
// Restore both run the seed-check before the first fetch so freshly seeded
// data is visible immediately.
type SessionSvcFacade interface {
	// Login creates a session for the given display name, persists the
	// profile, and returns the session with its restoration token. A failed
	// initial load leaves the session logged in with empty collections and
	// LoadFailed set.
	Login(ctx context.Context, name string) (*session.Session, string, error)

	// Restore rebuilds a session from a previously issued token.
	Restore(ctx context.Context, token string) (*session.Session, error)

	// Reload re-runs the initial load for an active session.
	Reload(ctx context.Context, userID string) (*session.Session, error)

	// Logout discards the in-memory session. The caller clears its token.
	Logout(userID string)

	// Active returns the live session for a user, if one exists.
	Active(userID string) (*session.Session, bool)
}
