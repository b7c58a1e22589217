package browser_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/collabhub/hubclient/internal/browser"
	"github.com/collabhub/hubclient/internal/mocks"
	"github.com/collabhub/hubclient/internal/state"
	"github.com/collabhub/hubclient/internal/testutil"
)

// Logout through the session cache must land the browser on the login view.
func TestLoginNavigator_CacheLogoutRedirects(t *testing.T) {
	testutil.SkipIfNoBrowser(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if r.URL.Path == "/login" {
			fmt.Fprintln(w, `<html><body><h1>Sign in</h1></body></html>`)
			return
		}
		fmt.Fprintln(w, `<html><body><h1>Dashboard</h1></body></html>`)
	}))
	t.Cleanup(srv.Close)

	cfg := browser.DefaultConfig()
	cfg.NavigationTimeout = 10 * time.Second
	driver := browser.NewDriver(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)
	t.Cleanup(func() {
		if err := driver.Shutdown(context.Background()); err != nil {
			t.Logf("shutdown: %v", err)
		}
	})

	session, err := driver.OpenSession(ctx, srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	require.NoError(t, session.Navigate(ctx, "/"))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockSessionClient(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)
	client.EXPECT().ClearToken()
	tokens.EXPECT().Clear(gomock.Any()).Return(nil)

	cache := state.New(state.Options{
		Client:    client,
		Tokens:    tokens,
		Navigator: browser.NewLoginNavigator(session, "/login"),
	})
	cache.Logout(ctx)

	url, err := session.URL(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "/login"), "expected login view, got %s", url)

	found, err := session.ContainsVisibleText(ctx, "Sign in")
	require.NoError(t, err)
	assert.True(t, found)
}
