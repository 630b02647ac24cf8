package repository

import (
	"context"

	"taskdash/internal/domain/entity"
)

// AuthRepository defines the interface to the store's account endpoints
type AuthRepository interface {
	// IsAuthenticated reports whether the current session is valid
	IsAuthenticated(ctx context.Context) (bool, error)

	// Login starts a session
	Login(ctx context.Context, email, password string) error

	// Register creates an account and starts a session
	Register(ctx context.Context, name, email, password string) error

	// Logout ends the session
	Logout(ctx context.Context) error

	// CurrentUser retrieves the account behind the session
	CurrentUser(ctx context.Context) (*entity.User, error)
}

// SessionStore persists session cookies between runs
type SessionStore interface {
	// Load returns the saved cookies, or nil when there are none
	Load() ([]SessionCookie, error)

	// Save replaces the saved cookies
	Save(cookies []SessionCookie) error

	// Clear forgets the session
	Clear() error
}

// SessionCookie is the name/value pair of a session cookie
type SessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
