package metrics

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/collabhub/hubclient/internal/errors"
)

type recordedMetric struct {
	name  string
	value int64
	dur   time.Duration
	tags  map[string]string
}

type fakeSink struct {
	counts  []recordedMetric
	timings []recordedMetric
}

func (f *fakeSink) Count(name string, value int64, tags map[string]string) {
	f.counts = append(f.counts, recordedMetric{name: name, value: value, tags: tags})
}

func (f *fakeSink) Gauge(string, float64, map[string]string) {}

func (f *fakeSink) Timing(name string, value time.Duration, tags map[string]string) {
	f.timings = append(f.timings, recordedMetric{name: name, dur: value, tags: tags})
}

func TestEmitScenarioRun_PassWithDuration(t *testing.T) {
	sink := &fakeSink{}
	EmitScenarioRun(sink, ScenarioMetric{
		Scenario: "profile_skills",
		Result:   ResultPass,
		Duration: 3 * time.Second,
	})

	if len(sink.counts) != 1 || len(sink.timings) != 1 {
		t.Fatalf("expected 1 count and 1 timing, got %d/%d", len(sink.counts), len(sink.timings))
	}
	if sink.counts[0].name != "scenario.run" {
		t.Fatalf("unexpected counter name %q", sink.counts[0].name)
	}
	if sink.counts[0].tags["result"] != "pass" {
		t.Fatalf("unexpected tags %v", sink.counts[0].tags)
	}
	if _, ok := sink.counts[0].tags["error_class"]; ok {
		t.Fatal("pass metric should not carry an error class")
	}
}

func TestEmitScenarioRun_FailTagsErrorClass(t *testing.T) {
	sink := &fakeSink{}
	EmitScenarioRun(sink, ScenarioMetric{
		Scenario: "search",
		Result:   ResultFail,
		Err:      apperrors.Transport(errors.New("connection refused")),
	})

	if len(sink.counts) != 1 {
		t.Fatalf("expected 1 count, got %d", len(sink.counts))
	}
	if got := sink.counts[0].tags["error_class"]; got != "transport" {
		t.Fatalf("error_class = %q, want transport", got)
	}
	if len(sink.timings) != 0 {
		t.Fatal("no timing expected without a duration")
	}
}

func TestEmitScenarioRun_NilSink(t *testing.T) {
	EmitScenarioRun(nil, ScenarioMetric{Scenario: "noop", Result: ResultPass})
}
