package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhub/hubclient/internal/domain/model"
	apperrors "github.com/collabhub/hubclient/internal/errors"
)

func TestClient_Login_InstallsTokenPair(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ada@example.com", body["email"])

		_, _ = w.Write([]byte(`{
			"access": "acc-1",
			"refresh": "ref-1",
			"user": {"id": 9, "email": "ada@example.com", "role": "talent"}
		}`))
	}))

	result, err := client.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.User.ID)
	assert.Equal(t, model.RoleTalent, result.User.Role)
	assert.Equal(t, model.TokenPair{Access: "acc-1", Refresh: "ref-1"}, client.Token())
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid email or password."}`))
	}))

	_, err := client.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.True(t, client.Token().Empty())
}

func TestClient_Register_InstallsTokenPair(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/register/", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"user": {"id": 12, "email": "new@example.com", "role": "founder"},
			"tokens": {"access": "acc-2", "refresh": "ref-2"},
			"message": "Registration successful"
		}`))
	}))

	result, err := client.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Username: "new",
		Password: "pw",
		Role:     model.RoleFounder,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleFounder, result.User.Role)
	assert.Equal(t, "acc-2", client.Token().Access)
}

func TestClient_Logout_ClearsTokenEvenOnServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid token"}`))
	}))

	client.SetToken(model.TokenPair{Access: "acc", Refresh: "ref"})
	err := client.Logout(context.Background())
	assert.Error(t, err)
	assert.True(t, client.Token().Empty())
}

func TestClient_Logout_NoRefreshTokenIsNoop(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	client.SetToken(model.TokenPair{Access: "only-access"})
	require.NoError(t, client.Logout(context.Background()))
	assert.False(t, called)
	assert.True(t, client.Token().Empty())
}

func TestClient_Refresh_RotatesPair(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/refresh/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ref-old", body["refresh"])

		_, _ = w.Write([]byte(`{"access":"acc-new","refresh":"ref-new"}`))
	}))

	client.SetToken(model.TokenPair{Access: "acc-old", Refresh: "ref-old"})
	pair, err := client.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TokenPair{Access: "acc-new", Refresh: "ref-new"}, pair)
	assert.Equal(t, pair, client.Token())
}

func TestClient_Refresh_KeepsOldRefreshWhenNotRotated(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access":"acc-new"}`))
	}))

	client.SetToken(model.TokenPair{Access: "acc-old", Refresh: "ref-keep"})
	pair, err := client.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ref-keep", pair.Refresh)
}

func TestClient_Refresh_WithoutRefreshToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	_, err := client.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestTokenSource_RefreshesNearExpiry(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access":"acc-fresh","refresh":"ref-fresh"}`))
	}))

	// Installed via SetToken: no expiry recorded, but an access token is
	// present, so the source serves it without refreshing.
	client.SetToken(model.TokenPair{Access: "acc-live", Refresh: "ref-live"})
	src := client.TokenSource(context.Background())

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "acc-live", tok.AccessToken)
}
