package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/collabhub/hubclient/config"
	"github.com/collabhub/hubclient/internal/adapters/filestore"
	"github.com/collabhub/hubclient/internal/adapters/redisstore"
	"github.com/collabhub/hubclient/internal/api"
	"github.com/collabhub/hubclient/internal/browser"
	"github.com/collabhub/hubclient/internal/observability/notify"
	"github.com/collabhub/hubclient/internal/observability/notify/slack"
	"github.com/collabhub/hubclient/internal/observability/statsd"
	"github.com/collabhub/hubclient/internal/ports"
	"github.com/collabhub/hubclient/internal/state"
)

// BuildTokenStore constructs the configured token store. The returned cleanup
// closes the backing Redis client when one was opened; it is never nil.
func BuildTokenStore(cfg *config.AppConfig, logger *slog.Logger) (ports.TokenStore, func(), error) {
	noop := func() {}

	if cfg.Storage.Backend == config.StorageBackendRedis {
		client, err := ConnectRedis(cfg.Redis, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("connect redis token store: %w", err)
		}
		cleanup := func() {
			if closeErr := client.Close(); closeErr != nil {
				logger.Warn("close redis client", "error", closeErr)
			}
		}
		return redisstore.New(client, cfg.Storage.Profile, cfg.Storage.TTL), cleanup, nil
	}

	path := cfg.Storage.Path
	if path == "" {
		defaultPath, err := filestore.DefaultPath()
		if err != nil {
			return nil, noop, fmt.Errorf("resolve token store path: %w", err)
		}
		path = defaultPath
	}
	store, err := filestore.New(path)
	if err != nil {
		return nil, noop, fmt.Errorf("open file token store: %w", err)
	}
	return store, noop, nil
}

// BuildMetrics constructs the StatsD client. Disabled configuration yields a
// no-op client, so callers can emit unconditionally.
func BuildMetrics(cfg config.ObservabilityMetricsConfig, logger *slog.Logger) (*statsd.Client, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build statsd client: %w", err)
	}
	return client, nil
}

// BuildNotifier constructs the failure notification sink. Returns nil when no
// sink is enabled; the runner treats a nil sink as "do not notify".
func BuildNotifier(cfg config.ObservabilityNotificationsConfig) (notify.Sink, error) {
	if !cfg.Enabled || !cfg.Slack.Enabled {
		return nil, nil
	}
	client, err := slack.NewClient(slack.Config{
		WebhookURL: cfg.Slack.WebhookURL,
		Channel:    cfg.Slack.Channel,
		Username:   cfg.Slack.Username,
		Timeout:    cfg.Timeout,
		RetryLimit: cfg.RetryLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("build slack notifier: %w", err)
	}
	return client, nil
}

// BuildAPIClient constructs the typed CollabHub API client.
func BuildAPIClient(cfg config.TargetConfig, logger *slog.Logger) (*api.Client, error) {
	client, err := api.New(api.Options{
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	return client, nil
}

// BuildDriver constructs the browser driver. The caller owns Start/Shutdown.
func BuildDriver(cfg config.BrowserConfig, logger *slog.Logger) *browser.Driver {
	return browser.NewDriver(browser.Config{
		ControlURL:        cfg.ControlURL,
		BinPath:           cfg.BinPath,
		Headless:          cfg.Headless,
		ViewportWidth:     cfg.ViewportWidth,
		ViewportHeight:    cfg.ViewportHeight,
		NavigationTimeout: cfg.NavigationTimeout,
	}, logger)
}

// BuildSessionCache assembles the session state cache over the API client and
// token store. Navigator may be nil when no browser session is attached yet.
func BuildSessionCache(client *api.Client, tokens ports.TokenStore, nav ports.Navigator, logger *slog.Logger) *state.Cache {
	return state.New(state.Options{
		Client:    client,
		Tokens:    tokens,
		Navigator: nav,
		Logger:    logger,
	})
}
