package config

import "strings"

// TargetConfig identifies the CollabHub deployment the scenarios run against.
type TargetConfig struct {
	// BaseURL is the root of the target deployment, e.g. http://localhost:8000.
	BaseURL string `env:"HUB_BASE_URL"   envDefault:"http://localhost:8000"`

	// LoginPath is the route the session cache redirects to when stored
	// credentials are rejected.
	LoginPath string `env:"HUB_LOGIN_PATH" envDefault:"/login"`
}

// Sanitize normalises the target URL fields.
func (c *TargetConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.LoginPath = strings.TrimSpace(c.LoginPath)
	if c.LoginPath == "" {
		c.LoginPath = "/login"
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		c.LoginPath = "/" + c.LoginPath
	}
}
