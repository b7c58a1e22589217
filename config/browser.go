package config

import (
	"strings"
	"time"
)

// BrowserConfig controls how the rod browser driver launches Chrome.
type BrowserConfig struct {
	// ControlURL points at an already running DevTools endpoint. When set,
	// the driver attaches instead of launching its own browser.
	ControlURL string `env:"CONTROL_URL"`

	// BinPath overrides the browser binary used by the launcher.
	BinPath string `env:"BIN_PATH"`

	Headless bool `env:"HEADLESS" envDefault:"true"`

	ViewportWidth  int `env:"VIEWPORT_WIDTH"  envDefault:"1440"`
	ViewportHeight int `env:"VIEWPORT_HEIGHT" envDefault:"900"`

	// NavigationTimeout bounds individual page loads and element waits.
	NavigationTimeout time.Duration `env:"NAVIGATION_TIMEOUT" envDefault:"30s"`
}

// Sanitize enforces safe defaults on browser settings.
func (c *BrowserConfig) Sanitize() {
	c.ControlURL = strings.TrimSpace(c.ControlURL)
	c.BinPath = strings.TrimSpace(c.BinPath)
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = 1440
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = 900
	}
	if c.NavigationTimeout <= 0 {
		c.NavigationTimeout = 30 * time.Second
	}
}
