// Package metrics emits standardised runner metrics over a statsd.Sink.
package metrics

import (
	"time"

	obserrors "github.com/collabhub/hubclient/internal/observability/errors"
	"github.com/collabhub/hubclient/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultPass    = "pass"
	ResultFail    = "fail"
	ResultSkipped = "skipped"
)

// ScenarioMetric captures one scenario execution for metric emission.
type ScenarioMetric struct {
	Scenario string
	Result   string
	Duration time.Duration
	Err      error
}

// EmitScenarioRun emits a counter and, when timed, a duration metric for one
// scenario execution.
func EmitScenarioRun(sink statsd.Sink, in ScenarioMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"scenario": in.Scenario,
		"result":   in.Result,
	}
	if in.Err != nil && in.Result == ResultFail {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("scenario.run", 1, tags)

	if in.Duration > 0 {
		sink.Timing("scenario.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
