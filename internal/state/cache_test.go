package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhub/hubclient/internal/domain/model"
	apperrors "github.com/collabhub/hubclient/internal/errors"
	"github.com/collabhub/hubclient/internal/ports"
)

type fakeClient struct {
	mu sync.Mutex

	token model.TokenPair

	meUser model.User
	meErr  error

	notifications    []model.Notification
	notificationsErr error

	markReadErr error
	markReadIDs []int64
}

func (f *fakeClient) Me(context.Context) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.meErr != nil {
		return model.User{}, f.meErr
	}
	return f.meUser, nil
}

func (f *fakeClient) Notifications(context.Context) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notificationsErr != nil {
		return nil, f.notificationsErr
	}
	out := make([]model.Notification, len(f.notifications))
	copy(out, f.notifications)
	return out, nil
}

func (f *fakeClient) MarkNotificationRead(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.markReadIDs = append(f.markReadIDs, id)
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeClient) SetToken(pair model.TokenPair) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = pair
}

func (f *fakeClient) ClearToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = model.TokenPair{}
}

func (f *fakeClient) heldToken() model.TokenPair {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

type fakeTokenStore struct {
	mu       sync.Mutex
	pair     model.TokenPair
	stored   bool
	loadErr  error
	saveErr  error
	clearErr error
}

func (f *fakeTokenStore) Load(context.Context) (model.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return model.TokenPair{}, f.loadErr
	}
	if !f.stored {
		return model.TokenPair{}, ports.ErrTokenNotFound
	}
	return f.pair, nil
}

func (f *fakeTokenStore) Save(_ context.Context, pair model.TokenPair) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.pair = pair
	f.stored = true
	return nil
}

func (f *fakeTokenStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.pair = model.TokenPair{}
	f.stored = false
	return nil
}

func (f *fakeTokenStore) hasToken() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored
}

type fakeNavigator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeNavigator) NavigateToLogin(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func (f *fakeNavigator) loginCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestCache(client *fakeClient, tokens *fakeTokenStore, nav *fakeNavigator) *Cache {
	return New(Options{Client: client, Tokens: tokens, Navigator: nav})
}

func TestInit_NoStoredToken(t *testing.T) {
	client := &fakeClient{}
	cache := newTestCache(client, &fakeTokenStore{}, &fakeNavigator{})

	cache.Init(context.Background())

	assert.False(t, cache.IsLoggedIn())
	assert.Nil(t, cache.User())
	assert.Equal(t, PhaseUnauthenticated, cache.Phase())
}

func TestInit_ValidStoredToken(t *testing.T) {
	client := &fakeClient{meUser: model.User{ID: 5, Email: "f@example.com", Role: model.RoleFounder}}
	tokens := &fakeTokenStore{pair: model.TokenPair{Access: "acc", Refresh: "ref"}, stored: true}
	cache := newTestCache(client, tokens, &fakeNavigator{})

	cache.Init(context.Background())

	require.True(t, cache.IsLoggedIn())
	require.NotNil(t, cache.User())
	assert.Equal(t, int64(5), cache.User().ID)
	assert.Equal(t, model.RoleFounder, cache.Role())
	assert.Equal(t, PhaseReady, cache.Phase())
	assert.Equal(t, "acc", client.heldToken().Access)
}

func TestInit_Idempotent(t *testing.T) {
	client := &fakeClient{meUser: model.User{ID: 5, Role: model.RoleTalent}}
	tokens := &fakeTokenStore{pair: model.TokenPair{Access: "acc"}, stored: true}
	cache := newTestCache(client, tokens, &fakeNavigator{})

	cache.Init(context.Background())
	require.True(t, cache.IsLoggedIn())

	// Break the client; a second Init must not touch it.
	client.mu.Lock()
	client.meErr = apperrors.Unauthorized("token expired")
	client.mu.Unlock()

	cache.Init(context.Background())
	assert.True(t, cache.IsLoggedIn())
}

func TestInit_RejectedTokenClearsAndRedirects(t *testing.T) {
	client := &fakeClient{meErr: apperrors.Unauthorized("token invalid")}
	tokens := &fakeTokenStore{pair: model.TokenPair{Access: "stale"}, stored: true}
	nav := &fakeNavigator{}
	cache := newTestCache(client, tokens, nav)

	cache.Init(context.Background())

	assert.False(t, cache.IsLoggedIn())
	assert.Nil(t, cache.User())
	assert.False(t, tokens.hasToken())
	assert.True(t, client.heldToken().Empty())
	assert.Equal(t, 1, nav.loginCalls())
}

func TestInit_TransportFailureKeepsState(t *testing.T) {
	client := &fakeClient{meErr: apperrors.Transport(errors.New("connection refused"))}
	tokens := &fakeTokenStore{pair: model.TokenPair{Access: "acc"}, stored: true}
	nav := &fakeNavigator{}
	cache := newTestCache(client, tokens, nav)

	cache.Init(context.Background())

	// Token survives a network outage; no forced logout.
	assert.True(t, tokens.hasToken())
	assert.Equal(t, 0, nav.loginCalls())
	assert.Equal(t, "acc", client.heldToken().Access)
}

func TestSetToken_PersistsAndAuthenticates(t *testing.T) {
	client := &fakeClient{}
	tokens := &fakeTokenStore{}
	cache := newTestCache(client, tokens, &fakeNavigator{})

	cache.SetToken(context.Background(), model.TokenPair{Access: "acc", Refresh: "ref"})

	assert.True(t, cache.IsLoggedIn())
	assert.True(t, tokens.hasToken())
	assert.Equal(t, "acc", client.heldToken().Access)
}

func TestSetToken_StorageFailureKeepsMemorySession(t *testing.T) {
	client := &fakeClient{}
	tokens := &fakeTokenStore{saveErr: errors.New("disk full")}
	cache := newTestCache(client, tokens, &fakeNavigator{})

	cache.SetToken(context.Background(), model.TokenPair{Access: "acc"})

	assert.True(t, cache.IsLoggedIn())
	assert.False(t, tokens.hasToken())
}

func TestAuthHeader(t *testing.T) {
	cache := newTestCache(&fakeClient{}, &fakeTokenStore{}, &fakeNavigator{})

	assert.Empty(t, cache.AuthHeader().Get("Authorization"))

	cache.SetToken(context.Background(), model.TokenPair{Access: "tok-1"})
	assert.Equal(t, "Bearer tok-1", cache.AuthHeader().Get("Authorization"))
}

func TestSetUser_RoleFallback(t *testing.T) {
	tests := []struct {
		name string
		role model.Role
		want model.Role
	}{
		{"valid role kept", model.RoleInvestor, model.RoleInvestor},
		{"empty role falls back", "", model.RoleTalent},
		{"unknown role falls back", "wizard", model.RoleTalent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newTestCache(&fakeClient{}, &fakeTokenStore{}, &fakeNavigator{})
			cache.SetUser(model.User{ID: 1, Role: tt.role})
			assert.Equal(t, tt.want, cache.Role())
			assert.True(t, cache.HasRole(tt.want))
		})
	}
}

func TestLogout_ClearsStorageAndNavigatesOnce(t *testing.T) {
	client := &fakeClient{meUser: model.User{ID: 5, Role: model.RoleStudent}}
	tokens := &fakeTokenStore{pair: model.TokenPair{Access: "acc"}, stored: true}
	nav := &fakeNavigator{}
	cache := newTestCache(client, tokens, nav)
	cache.Init(context.Background())
	require.True(t, cache.IsLoggedIn())

	cache.Logout(context.Background())

	assert.False(t, cache.IsLoggedIn())
	assert.Nil(t, cache.User())
	assert.False(t, tokens.hasToken())
	assert.True(t, client.heldToken().Empty())
	assert.Equal(t, 1, nav.loginCalls())
	assert.Equal(t, 0, cache.UnreadCount())
}

func TestLogout_StorageFailureStillNavigates(t *testing.T) {
	tokens := &fakeTokenStore{pair: model.TokenPair{Access: "acc"}, stored: true, clearErr: errors.New("io error")}
	nav := &fakeNavigator{}
	cache := newTestCache(&fakeClient{}, tokens, nav)
	cache.SetToken(context.Background(), model.TokenPair{Access: "acc"})

	cache.Logout(context.Background())

	assert.False(t, cache.IsLoggedIn())
	assert.Equal(t, 1, nav.loginCalls())
}

func TestLoadNotifications_UnreadCount(t *testing.T) {
	client := &fakeClient{notifications: []model.Notification{
		{ID: 1, IsRead: false},
		{ID: 2, IsRead: true},
		{ID: 3, IsRead: false},
	}}
	cache := newTestCache(client, &fakeTokenStore{}, &fakeNavigator{})

	cache.LoadNotifications(context.Background())
	assert.Len(t, cache.Notifications(), 3)
	assert.Equal(t, 2, cache.UnreadCount())

	// Wholesale replacement, including shrinking to empty.
	client.mu.Lock()
	client.notifications = nil
	client.mu.Unlock()

	cache.LoadNotifications(context.Background())
	assert.Empty(t, cache.Notifications())
	assert.Equal(t, 0, cache.UnreadCount())
}

func TestLoadNotifications_FailureKeepsPriorList(t *testing.T) {
	client := &fakeClient{notifications: []model.Notification{{ID: 1}}}
	cache := newTestCache(client, &fakeTokenStore{}, &fakeNavigator{})
	cache.LoadNotifications(context.Background())
	require.Len(t, cache.Notifications(), 1)

	client.mu.Lock()
	client.notificationsErr = apperrors.Transport(errors.New("timeout"))
	client.mu.Unlock()

	cache.LoadNotifications(context.Background())
	assert.Len(t, cache.Notifications(), 1)
	assert.Equal(t, 1, cache.UnreadCount())
}

func TestMarkNotificationRead_TriggersReload(t *testing.T) {
	client := &fakeClient{notifications: []model.Notification{
		{ID: 1, IsRead: false},
		{ID: 2, IsRead: false},
	}}
	cache := newTestCache(client, &fakeTokenStore{}, &fakeNavigator{})
	cache.LoadNotifications(context.Background())
	require.Equal(t, 2, cache.UnreadCount())

	cache.MarkNotificationRead(context.Background(), 1)

	assert.Equal(t, []int64{1}, client.markReadIDs)
	assert.Equal(t, 1, cache.UnreadCount())
}

func TestMarkNotificationRead_FailureSkipsReload(t *testing.T) {
	client := &fakeClient{
		notifications: []model.Notification{{ID: 1, IsRead: false}},
		markReadErr:   apperrors.Transport(errors.New("timeout")),
	}
	cache := newTestCache(client, &fakeTokenStore{}, &fakeNavigator{})
	cache.LoadNotifications(context.Background())

	cache.MarkNotificationRead(context.Background(), 1)

	assert.Empty(t, client.markReadIDs)
	assert.Equal(t, 1, cache.UnreadCount())
}

func TestSubscribe_NotifiedInOrder(t *testing.T) {
	cache := newTestCache(&fakeClient{}, &fakeTokenStore{}, &fakeNavigator{})

	var order []string
	cache.Subscribe(func(Snapshot) { order = append(order, "first") })
	cache.Subscribe(func(Snapshot) { order = append(order, "second") })

	cache.SetUser(model.User{ID: 1, Role: model.RoleTalent})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscribe_SnapshotContents(t *testing.T) {
	client := &fakeClient{notifications: []model.Notification{{ID: 1, IsRead: false}}}
	cache := newTestCache(client, &fakeTokenStore{}, &fakeNavigator{})
	cache.SetUser(model.User{ID: 7, Role: model.RoleFounder})

	var got Snapshot
	cache.Subscribe(func(s Snapshot) { got = s })

	cache.LoadNotifications(context.Background())

	require.NotNil(t, got.User)
	assert.Equal(t, int64(7), got.User.ID)
	assert.Equal(t, model.RoleFounder, got.Role)
	assert.Equal(t, 1, got.UnreadCount)
	assert.Len(t, got.Notifications, 1)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	cache := newTestCache(&fakeClient{}, &fakeTokenStore{}, &fakeNavigator{})

	calls := 0
	unsubscribe := cache.Subscribe(func(Snapshot) { calls++ })

	cache.SetUser(model.User{ID: 1, Role: model.RoleTalent})
	require.Equal(t, 1, calls)

	unsubscribe()
	cache.SetUser(model.User{ID: 2, Role: model.RoleTalent})
	assert.Equal(t, 1, calls)

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestNotify_PanickingListenerDoesNotBlockOthers(t *testing.T) {
	cache := newTestCache(&fakeClient{}, &fakeTokenStore{}, &fakeNavigator{})

	var delivered []string
	cache.Subscribe(func(Snapshot) { panic("listener bug") })
	cache.Subscribe(func(Snapshot) { delivered = append(delivered, "survivor") })

	cache.SetUser(model.User{ID: 1, Role: model.RoleTalent})

	assert.Equal(t, []string{"survivor"}, delivered)
}

func TestLogout_NotifiesListeners(t *testing.T) {
	cache := newTestCache(&fakeClient{}, &fakeTokenStore{}, &fakeNavigator{})
	cache.SetToken(context.Background(), model.TokenPair{Access: "acc"})
	cache.SetUser(model.User{ID: 1, Role: model.RoleTalent})

	var last Snapshot
	cache.Subscribe(func(s Snapshot) { last = s })

	cache.Logout(context.Background())

	assert.False(t, last.IsAuthenticated)
	assert.Nil(t, last.User)
	assert.Equal(t, 0, last.UnreadCount)
}
