// Package state holds the client-side session cache: the single
// authoritative in-memory record of the signed-in user, role, bearer token,
// and notification summary for one client context.
//
// Only the token pair is persisted (through ports.TokenStore); everything
// else is rebuilt by Init on the next run. Mutations notify subscribed
// observers synchronously, in registration order. Public operations never
// return errors: the cache degrades to "not logged in" and logs
// diagnostics instead of propagating failures.
package state

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/collabhub/hubclient/internal/domain/model"
	apperrors "github.com/collabhub/hubclient/internal/errors"
	"github.com/collabhub/hubclient/internal/ports"
)

// Phase tracks the identity-fetch lifecycle.
type Phase string

const (
	PhaseUninitialized   Phase = "uninitialized"
	PhaseInitializing    Phase = "initializing"
	PhaseReady           Phase = "ready"
	PhaseUnauthenticated Phase = "unauthenticated"
)

// Snapshot is the immutable view of the cache passed to listeners.
type Snapshot struct {
	User            *model.User
	Role            model.Role
	IsAuthenticated bool
	Notifications   []model.Notification
	UnreadCount     int
}

// Listener observes cache mutations. Listeners run synchronously on the
// mutating goroutine; a panicking listener is recovered and logged so it
// cannot abort delivery to later listeners.
type Listener func(Snapshot)

// Options groups dependencies for the Cache.
type Options struct {
	Client    ports.SessionClient
	Tokens    ports.TokenStore
	Navigator ports.Navigator
	Logger    *slog.Logger
}

type listenerEntry struct {
	id int
	fn Listener
}

// Cache is the session state cache. Safe for concurrent use.
type Cache struct {
	client    ports.SessionClient
	tokens    ports.TokenStore
	navigator ports.Navigator
	logger    *slog.Logger

	mu            sync.Mutex
	phase         Phase
	initialized   bool
	user          *model.User
	role          model.Role
	authenticated bool
	token         model.TokenPair
	notifications []model.Notification
	unread        int
	listeners     []listenerEntry
	nextID        int
}

// New constructs a Cache. Client and Tokens are required; Navigator may be
// nil when no navigation effect is wanted (e.g., headless tools).
func New(opts Options) *Cache {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		client:    opts.Client,
		tokens:    opts.Tokens,
		navigator: opts.Navigator,
		logger:    logger,
		phase:     PhaseUninitialized,
	}
}

// Init resolves the stored token to an identity. Idempotent: repeat calls
// are no-ops. On a rejected token the session is cleared and the user agent
// is sent to the login view; on transport failure prior state is kept and
// only a diagnostic is logged.
func (c *Cache) Init(ctx context.Context) {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.phase = PhaseInitializing
	c.mu.Unlock()

	pair, err := c.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrTokenNotFound) {
			c.logger.WarnContext(ctx, "load stored token failed", "error", err)
		}
		c.setPhase(PhaseUnauthenticated)
		return
	}

	c.mu.Lock()
	c.token = pair
	c.mu.Unlock()
	c.client.SetToken(pair)

	user, err := c.client.Me(ctx)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			c.logger.InfoContext(ctx, "stored token rejected; clearing session")
			c.ClearSession(ctx)
			c.navigateToLogin(ctx)
			return
		}
		// Transport or server failure: keep whatever state we had.
		c.logger.WarnContext(ctx, "identity fetch failed; keeping prior state", "error", err)
		c.setPhase(PhaseUnauthenticated)
		return
	}

	c.mu.Lock()
	c.authenticated = true
	c.phase = PhaseReady
	c.mu.Unlock()
	c.SetUser(user)
}

// SetUser replaces the user record, derives the role, and notifies listeners.
// A record without a valid role falls back to talent.
func (c *Cache) SetUser(user model.User) {
	role := user.Role
	if !role.Valid() {
		role = model.RoleTalent
	}

	c.mu.Lock()
	u := user
	c.user = &u
	c.role = role
	c.mu.Unlock()

	c.notifyListeners()
}

// User returns the cached user record, or nil before a successful fetch.
func (c *Cache) User() *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Role returns the derived role for the cached user.
func (c *Cache) Role() model.Role {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role
}

// HasRole reports whether the derived role equals r.
func (c *Cache) HasRole(r model.Role) bool {
	return c.Role() == r
}

// IsLoggedIn reports whether the session is usable: authenticated and
// holding a non-empty token.
func (c *Cache) IsLoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated && !c.token.Empty()
}

// Phase returns the identity-fetch lifecycle phase.
func (c *Cache) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// SetToken stores the pair in memory and durable storage and marks the
// session authenticated. The token is not validated: this is a thin
// boundary by contract. Storage failures are logged, not returned; the
// in-memory session stays usable for the rest of this run.
func (c *Cache) SetToken(ctx context.Context, pair model.TokenPair) {
	c.mu.Lock()
	c.token = pair
	c.authenticated = true
	c.phase = PhaseReady
	c.mu.Unlock()

	c.client.SetToken(pair)
	if err := c.tokens.Save(ctx, pair); err != nil {
		c.logger.WarnContext(ctx, "persist token failed", "error", err)
	}
}

// AuthHeader returns an empty header set when no token is held, otherwise a
// single bearer Authorization header.
func (c *Cache) AuthHeader() http.Header {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	header := http.Header{}
	if !token.Empty() {
		header.Set("Authorization", "Bearer "+token.Access)
	}
	return header
}

// ClearSession clears user, role, authenticated flag, and token (memory and
// durable storage), then notifies listeners. It performs no navigation, so
// it is independently testable; Logout composes the two.
func (c *Cache) ClearSession(ctx context.Context) {
	c.mu.Lock()
	c.user = nil
	c.role = ""
	c.authenticated = false
	c.token = model.TokenPair{}
	c.notifications = nil
	c.unread = 0
	c.phase = PhaseUnauthenticated
	c.mu.Unlock()

	c.client.ClearToken()
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.WarnContext(ctx, "clear stored token failed", "error", err)
	}

	c.notifyListeners()
}

// Logout clears the session and then navigates to the login view exactly
// once. Terminal: the cache is unusable for authenticated calls afterwards.
func (c *Cache) Logout(ctx context.Context) {
	c.ClearSession(ctx)
	c.navigateToLogin(ctx)
}

// Subscribe registers an observer and returns its unsubscribe func.
func (c *Cache) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, entry := range c.listeners {
			if entry.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// LoadNotifications fetches the notification list, replaces the cached list
// wholesale, recomputes the unread count, and notifies listeners. Failures
// are logged and leave prior state untouched.
func (c *Cache) LoadNotifications(ctx context.Context) {
	notifications, err := c.client.Notifications(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "load notifications failed", "error", err)
		return
	}

	c.mu.Lock()
	c.notifications = notifications
	c.unread = model.CountUnread(notifications)
	c.mu.Unlock()

	c.notifyListeners()
}

// MarkNotificationRead issues a mark-read request for the given id, then
// unconditionally reloads the full list. No optimistic local update is made,
// so a failed request needs no rollback.
func (c *Cache) MarkNotificationRead(ctx context.Context, id int64) {
	if err := c.client.MarkNotificationRead(ctx, id); err != nil {
		c.logger.WarnContext(ctx, "mark notification read failed", "id", id, "error", err)
		return
	}
	c.LoadNotifications(ctx)
}

// Notifications returns the cached notification list.
func (c *Cache) Notifications() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// UnreadCount returns the cached count of unread notifications.
func (c *Cache) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// snapshot builds the listener view. Caller must hold c.mu.
func (c *Cache) snapshotLocked() Snapshot {
	snap := Snapshot{
		Role:            c.role,
		IsAuthenticated: c.authenticated,
		UnreadCount:     c.unread,
	}
	if c.user != nil {
		u := *c.user
		snap.User = &u
	}
	if len(c.notifications) > 0 {
		snap.Notifications = make([]model.Notification, len(c.notifications))
		copy(snap.Notifications, c.notifications)
	}
	return snap
}

// notifyListeners invokes every registered observer synchronously in
// registration order. Each invocation is isolated: a panicking observer is
// logged and delivery continues.
func (c *Cache) notifyListeners() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	entries := make([]listenerEntry, len(c.listeners))
	copy(entries, c.listeners)
	c.mu.Unlock()

	for _, entry := range entries {
		c.invoke(entry, snap)
	}
}

func (c *Cache) invoke(entry listenerEntry, snap Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("state listener panicked", "listener", entry.id, "panic", r)
		}
	}()
	entry.fn(snap)
}

func (c *Cache) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

func (c *Cache) navigateToLogin(ctx context.Context) {
	if c.navigator == nil {
		return
	}
	if err := c.navigator.NavigateToLogin(ctx); err != nil {
		c.logger.WarnContext(ctx, "navigate to login failed", "error", err)
	}
}
