package bootstrap

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhub/hubclient/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildTokenStore_FileBackend(t *testing.T) {
	cfg := &config.AppConfig{
		Storage: config.StorageConfig{
			Backend: config.StorageBackendFile,
			Path:    filepath.Join(t.TempDir(), "session.json"),
		},
	}

	store, cleanup, err := BuildTokenStore(cfg, testLogger())
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, store)
}

func TestBuildMetrics_DisabledIsNoop(t *testing.T) {
	client, err := BuildMetrics(config.ObservabilityMetricsConfig{}, testLogger())
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.False(t, client.Enabled())
}

func TestBuildNotifier(t *testing.T) {
	sink, err := BuildNotifier(config.ObservabilityNotificationsConfig{})
	require.NoError(t, err)
	assert.Nil(t, sink)

	cfg := config.ObservabilityNotificationsConfig{
		Enabled: true,
		Slack: config.SlackNotificationConfig{
			Enabled:    true,
			WebhookURL: "https://hooks.slack.example/T/B/x",
		},
	}
	sink, err = BuildNotifier(cfg)
	require.NoError(t, err)
	assert.NotNil(t, sink)
}

func TestBuildAPIClient_RequiresBaseURL(t *testing.T) {
	_, err := BuildAPIClient(config.TargetConfig{}, testLogger())
	assert.Error(t, err)

	client, err := BuildAPIClient(config.TargetConfig{BaseURL: "http://localhost:8000"}, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, client)
}
