// Package notify defines the canonical scenario-failure event and the sink
// interface delivery backends implement.
package notify

import (
	"context"
	"time"
)

// Severity constants recognised by downstream sinks.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// ScenarioFailurePayload captures the data emitted when an e2e scenario fails.
type ScenarioFailurePayload struct {
	Scenario   string
	Step       string
	TargetURL  string
	RunID      string
	Error      string
	ErrorClass string
	Severity   string
	OccurredAt time.Time
	Metadata   map[string]string
}

// Sink is a destination for scenario failure notifications.
type Sink interface {
	SendScenarioFailure(ctx context.Context, payload ScenarioFailurePayload) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, payload ScenarioFailurePayload) error

// SendScenarioFailure implements the Sink interface.
func (f SinkFunc) SendScenarioFailure(ctx context.Context, payload ScenarioFailurePayload) error {
	if f == nil {
		return nil
	}
	return f(ctx, payload)
}
