package config

import (
	"strings"
	"time"
)

// Token store backends.
const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
)

// StorageConfig selects where session tokens persist between runs.
type StorageConfig struct {
	// Backend is either "file" or "redis".
	Backend string `env:"BACKEND" envDefault:"file"`

	// Path is the token file location for the file backend. Empty means
	// the conventional location under the user config directory.
	Path string `env:"PATH"`

	// Profile namespaces tokens in the redis backend so parallel runners
	// do not clobber each other.
	Profile string `env:"PROFILE" envDefault:"default"`

	// TTL expires redis-held tokens. 0 keeps them until cleared.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

// Sanitize normalises the backend selection.
func (c *StorageConfig) Sanitize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend != StorageBackendRedis {
		c.Backend = StorageBackendFile
	}
	c.Path = strings.TrimSpace(c.Path)
	if c.Profile = strings.TrimSpace(c.Profile); c.Profile == "" {
		c.Profile = "default"
	}
	if c.TTL < 0 {
		c.TTL = 0
	}
}
