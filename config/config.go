package config

import (
	"os"
	"strings"
)

// AppConfig is the main configuration struct for the scenario runner. It
// composes domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// the available variables:
//   - target.go: target application configuration
//   - browser.go: browser automation configuration
//   - storage.go: token store configuration
//   - database.go: run-results database and Redis configuration
//   - runner.go: scenario runner configuration
//   - observability.go: metrics and failure notification configuration
type AppConfig struct {
	// IsDev controls development mode behavior (headful browser, verbose
	// logging). Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Target application configuration
	Target TargetConfig

	// Browser automation configuration
	Browser BrowserConfig `envPrefix:"BROWSER_"`

	// Token store configuration
	Storage StorageConfig `envPrefix:"STORAGE_"`

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// Scenario runner configuration
	Runner RunnerConfig `envPrefix:"RUNNER_"`

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Target.Sanitize()
	c.Browser.Sanitize()
	c.Storage.Sanitize()
	c.Runner.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()

	if c.IsDev {
		// Development runs want to watch the browser.
		c.Browser.Headless = false
	}
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
