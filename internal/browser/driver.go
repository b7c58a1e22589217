// Package browser drives a headless Chrome instance against the CollabHub
// web app. It owns the browser process lifecycle and hands out Session
// values, one incognito page per scenario, so scenarios cannot leak cookies
// or storage into each other.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Config holds browser settings.
type Config struct {
	// ControlURL is a DevTools websocket URL of an already-running Chrome.
	// When empty a new headless instance is launched.
	ControlURL string

	// BinPath overrides the Chrome binary used by the launcher.
	BinPath string

	Headless       bool
	ViewportWidth  int
	ViewportHeight int

	// NavigationTimeout bounds each page load.
	NavigationTimeout time.Duration
}

// DefaultConfig returns the settings used by the e2e runner.
func DefaultConfig() Config {
	return Config{
		Headless:          true,
		ViewportWidth:     1440,
		ViewportHeight:    900,
		NavigationTimeout: 30 * time.Second,
	}
}

func (c Config) navigationTimeout() time.Duration {
	if c.NavigationTimeout <= 0 {
		return 30 * time.Second
	}
	return c.NavigationTimeout
}

// Driver owns one Chrome instance shared by all sessions.
type Driver struct {
	cfg    Config
	logger *slog.Logger

	mu       sync.Mutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

// NewDriver creates a Driver. Call Start before opening sessions.
func NewDriver(cfg Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{cfg: cfg, logger: logger}
}

// Start connects to the configured Chrome, launching one if no control URL
// was given. Idempotent while the connection stays healthy.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.browser != nil {
		if _, err := d.browser.Version(); err == nil {
			return nil
		}
		d.logger.WarnContext(ctx, "stale browser connection, reconnecting")
		_ = d.browser.Close()
		d.browser = nil
	}

	controlURL := d.cfg.ControlURL
	if controlURL == "" {
		launch := launcher.New().Headless(d.cfg.Headless)
		if d.cfg.BinPath != "" {
			launch = launch.Bin(d.cfg.BinPath)
		}
		url, err := launch.Launch()
		if err != nil {
			return fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = url
		d.launched = launch
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}

	d.browser = browser
	d.logger.InfoContext(ctx, "browser connected", "headless", d.cfg.Headless)
	return nil
}

// Shutdown closes the browser and, when this driver launched it, the Chrome
// process too.
func (d *Driver) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	if d.browser != nil {
		err = d.browser.Close()
		d.browser = nil
	}
	if d.launched != nil {
		d.launched.Cleanup()
		d.launched = nil
	}
	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	d.logger.InfoContext(ctx, "browser shut down")
	return nil
}

// OpenSession creates an incognito context with a fresh blank page sized to
// the configured viewport. The caller owns the returned Session and must
// Close it.
func (d *Driver) OpenSession(ctx context.Context, baseURL string) (*Session, error) {
	if err := d.Start(ctx); err != nil {
		return nil, err
	}

	d.mu.Lock()
	browser := d.browser
	d.mu.Unlock()

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("incognito context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             d.cfg.ViewportWidth,
		Height:            d.cfg.ViewportHeight,
		DeviceScaleFactor: 1.0,
	}).Call(page); err != nil {
		d.logger.WarnContext(ctx, "set viewport failed", "error", err)
	}

	return &Session{
		page:       page,
		baseURL:    baseURL,
		navTimeout: d.cfg.navigationTimeout(),
		logger:     d.logger,
	}, nil
}
