package filestore

// Package filestore provides a file-backed token store, the desktop analog
// of the browser's localStorage. One JSON file per profile, containing only
// the token pair.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/ports"
)

// Storage keys. collabhub_access_token is canonical; auth_token is the
// legacy key some earlier clients wrote and is read as a fallback.
const (
	keyAccessToken  = "collabhub_access_token"
	keyRefreshToken = "collabhub_refresh_token"
	keyLegacyToken  = "auth_token"
)

const fileMode = 0o600

// ErrTokenNotFound aliases the ports sentinel for callers importing only
// this package.
var ErrTokenNotFound = ports.ErrTokenNotFound

// Store persists a token pair in a JSON file.
type Store struct {
	path string
}

var _ ports.TokenStore = (*Store)(nil)

// New creates a file-backed token store at the given path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("token store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create token store directory: %w", err)
	}
	return &Store{path: path}, nil
}

// DefaultPath returns the conventional token file location under the
// user's config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "collabhub", "session.json"), nil
}

func (s *Store) Load(_ context.Context) (model.TokenPair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.TokenPair{}, ErrTokenNotFound
		}
		return model.TokenPair{}, fmt.Errorf("read token file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.TokenPair{}, fmt.Errorf("decode token file: %w", err)
	}

	pair := model.TokenPair{
		Access:  raw[keyAccessToken],
		Refresh: raw[keyRefreshToken],
	}
	if pair.Access == "" {
		// Legacy clients stored the access token under auth_token.
		pair.Access = raw[keyLegacyToken]
	}
	if pair.Empty() {
		return model.TokenPair{}, ErrTokenNotFound
	}
	return pair, nil
}

func (s *Store) Save(_ context.Context, pair model.TokenPair) error {
	if pair.Empty() {
		return errors.New("cannot save an empty token")
	}

	raw := map[string]string{keyAccessToken: pair.Access}
	if pair.Refresh != "" {
		raw[keyRefreshToken] = pair.Refresh
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot leave a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, fileMode); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
