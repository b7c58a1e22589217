package config

import (
	"strings"
	"time"
)

// RunnerConfig controls scenario selection and execution limits.
type RunnerConfig struct {
	// Scenarios picks which scenarios run, by name. Empty means all.
	Scenarios []string `env:"SCENARIOS" envSeparator:","`

	// Parallelism bounds concurrent scenarios. 0 or 1 runs sequentially.
	Parallelism int `env:"PARALLELISM" envDefault:"1"`

	// ScenarioTimeout bounds a single scenario end to end.
	ScenarioTimeout time.Duration `env:"SCENARIO_TIMEOUT" envDefault:"2m"`

	// ReadinessTimeout bounds how long the runner waits for the target to
	// answer health probes before the first scenario starts.
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"1m"`
}

// Sanitize enforces safe execution limits.
func (c *RunnerConfig) Sanitize() {
	var names []string
	for _, name := range c.Scenarios {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	c.Scenarios = names

	if c.Parallelism < 0 {
		c.Parallelism = 1
	}
	if c.ScenarioTimeout <= 0 {
		c.ScenarioTimeout = 2 * time.Minute
	}
	if c.ReadinessTimeout <= 0 {
		c.ReadinessTimeout = time.Minute
	}
}
