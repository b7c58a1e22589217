package redisstore

// Package redisstore provides a Redis-backed token store for runner fleets
// that share one session across workers (e.g., CI shards reusing a login).

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/ports"
)

// ErrTokenNotFound aliases the ports sentinel for callers importing only
// this package.
var ErrTokenNotFound = ports.ErrTokenNotFound

// Store keeps the token pair under a single Redis key.
type Store struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

var _ ports.TokenStore = (*Store)(nil)

// New creates a Redis-backed token store for the given profile name.
// TTL of 0 means the token never expires from Redis.
func New(client redis.UniversalClient, profile string, ttl time.Duration) *Store {
	if profile == "" {
		profile = "default"
	}
	return &Store{
		client: client,
		key:    "hubclient:token:" + profile,
		ttl:    ttl,
	}
}

func (s *Store) Load(ctx context.Context) (model.TokenPair, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.TokenPair{}, ErrTokenNotFound
		}
		return model.TokenPair{}, fmt.Errorf("redis get: %w", err)
	}

	var pair model.TokenPair
	if unmarshalErr := json.Unmarshal([]byte(data), &pair); unmarshalErr != nil {
		return model.TokenPair{}, fmt.Errorf("unmarshal token: %w", unmarshalErr)
	}
	if pair.Empty() {
		return model.TokenPair{}, ErrTokenNotFound
	}
	return pair, nil
}

func (s *Store) Save(ctx context.Context, pair model.TokenPair) error {
	if pair.Empty() {
		return errors.New("cannot save an empty token")
	}

	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
