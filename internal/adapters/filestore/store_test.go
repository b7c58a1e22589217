package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "collabhub", "session.json"))
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pair := model.TokenPair{Access: "access-abc", Refresh: "refresh-def"}
	require.NoError(t, store.Save(ctx, pair))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, loaded)
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestStore_SaveEmptyToken(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.Save(context.Background(), model.TokenPair{}))
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.TokenPair{Access: "tok"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Clearing an already-empty store is fine.
	assert.NoError(t, store.Clear(ctx))
}

func TestStore_LegacyKeyFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	legacy := map[string]string{"auth_token": "legacy-token"}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	store, err := New(path)
	require.NoError(t, err)

	pair, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", pair.Access)
	assert.Empty(t, pair.Refresh)
}

func TestStore_CanonicalKeyWinsOverLegacy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	raw := map[string]string{
		"collabhub_access_token": "canonical",
		"auth_token":             "legacy",
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	store, err := New(path)
	require.NoError(t, err)

	pair, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "canonical", pair.Access)
}
