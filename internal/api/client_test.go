package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhub/hubclient/internal/domain/model"
	apperrors "github.com/collabhub/hubclient/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New(Options{BaseURL: "http://localhost:8000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", client.baseURL)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.User{ID: 1, Email: "a@b.c"})
	}))

	// No token installed: header absent.
	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	client.SetToken(model.TokenPair{Access: "tok-123"})
	_, err = client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	client.ClearToken()
	_, err = client.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_MapsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Given token not valid for any token type"}`))
	}))

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestClient_MapsTransportError(t *testing.T) {
	client, srv := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}

func TestGetList_PaginationEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count":2,"next":null,"previous":null,"results":[{"id":1},{"id":2}]}`))
	}))

	items, err := getList[model.Notification](context.Background(), client, "/api/v1/notifications/")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
}

func TestGetList_BareArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":7,"proficiency":"advanced","skill":{"id":3,"name":"Go"}}]`))
	}))

	items, err := getList[model.UserSkill](context.Background(), client, "/api/v1/users/me/skills/")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Go", items[0].Skill.Name)
	assert.Equal(t, model.ProficiencyAdvanced, items[0].Proficiency)
}

func TestClient_MarkNotificationRead_Path(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	require.NoError(t, client.MarkNotificationRead(context.Background(), 42))
	assert.Equal(t, "/api/v1/notifications/42/read/", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestClient_SearchStartups_Query(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
	}))

	_, err := client.SearchStartups(context.Background(), model.StartupSearchOptions{
		Q:        "quantify",
		Industry: "logistics",
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "search=quantify")
	assert.Contains(t, gotQuery, "industry=logistics")
}

func TestClient_CreateStartup_ValidatesBeforeSending(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	_, err := client.CreateStartup(context.Background(), model.CreateStartupRequest{})
	assert.Error(t, err)
	assert.False(t, called)
}
