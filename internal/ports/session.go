package ports

// Package ports defines interfaces (hexagonal ports) for session-related behavior.
// Implementations live in internal/adapters and internal/api; orchestration in internal/state.

import (
	"context"
	"errors"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// ErrTokenNotFound is returned by TokenStore.Load when no token has been
// saved. Not an error condition for callers: it means "start logged out".
var ErrTokenNotFound = errors.New("token not found")

// TokenStore persists the bearer token pair across process restarts.
// It is the Go analog of the browser's durable storage: only the token
// survives; everything else in the session cache is rebuilt on Init.
type TokenStore interface {
	// Load returns the stored token pair. Implementations return
	// ErrTokenNotFound when no token has been saved.
	Load(ctx context.Context) (model.TokenPair, error)

	// Save stores the token pair, replacing any previous value.
	Save(ctx context.Context, pair model.TokenPair) error

	// Clear removes the stored token pair. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Navigator performs the hard-navigation side effect on logout or a
// rejected token. Separated from session clearing so the latter is
// independently testable.
type Navigator interface {
	// NavigateToLogin sends the user agent to the login view.
	NavigateToLogin(ctx context.Context) error
}

// IdentityClient resolves the current bearer token to a user record.
type IdentityClient interface {
	// Me fetches the identity for the client's current token.
	Me(ctx context.Context) (model.User, error)
}

// NotificationClient reads and mutates the notification list for the
// current bearer token.
type NotificationClient interface {
	// Notifications fetches the caller's notification list, newest first.
	Notifications(ctx context.Context) ([]model.Notification, error)

	// MarkNotificationRead marks a single notification as read. Idempotent.
	MarkNotificationRead(ctx context.Context, id int64) error
}

// BearerHolder lets the session cache push token changes into the API client.
type BearerHolder interface {
	// SetToken installs the token pair used for subsequent requests.
	SetToken(pair model.TokenPair)

	// ClearToken removes the installed token pair.
	ClearToken()
}

// SessionClient is the full surface the session cache needs from the API layer.
type SessionClient interface {
	IdentityClient
	NotificationClient
	BearerHolder
}
