package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/collabhub/hubclient/internal/browser"
	obserrors "github.com/collabhub/hubclient/internal/observability/errors"
	"github.com/collabhub/hubclient/internal/observability/metrics"
	"github.com/collabhub/hubclient/internal/observability/notify"
	"github.com/collabhub/hubclient/internal/observability/statsd"
)

// RunRecorder persists scenario results. Implemented by the Postgres run
// repository; nil disables recording.
type RunRecorder interface {
	RecordRun(ctx context.Context, result Result) error
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	BaseURL string
	Driver  *browser.Driver

	// Parallelism bounds concurrent scenarios. Zero means sequential.
	Parallelism int

	// ScenarioTimeout bounds each scenario. Zero means 2 minutes.
	ScenarioTimeout time.Duration

	// ReadinessTimeout bounds the pre-run health poll. Zero means 1 minute.
	ReadinessTimeout time.Duration

	Metrics  statsd.Sink
	Notifier notify.Sink
	Recorder RunRecorder

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Runner executes scenarios against one deployment.
type Runner struct {
	opts   RunnerOptions
	logger *slog.Logger
}

// NewRunner validates options and builds a Runner.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("runner base url is required")
	}
	if opts.Parallelism < 0 {
		return nil, fmt.Errorf("parallelism must not be negative")
	}
	if opts.ScenarioTimeout <= 0 {
		opts.ScenarioTimeout = 2 * time.Minute
	}
	if opts.ReadinessTimeout <= 0 {
		opts.ReadinessTimeout = time.Minute
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{opts: opts, logger: logger}, nil
}

// WaitReady polls the target's API root until it answers, with Fibonacci
// backoff bounded by the readiness timeout. Scenario flows themselves never
// retry; only this pre-run gate does.
func (r *Runner) WaitReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.ReadinessTimeout)
	defer cancel()

	url := r.opts.BaseURL + "/api/v1/"
	err := retry.Fibonacci(ctx, 500*time.Millisecond, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := r.opts.HTTPClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("target not ready: %s", resp.Status))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("target %s never became ready: %w", r.opts.BaseURL, err)
	}
	return nil
}

// Run executes the given scenarios and returns one Result each, in input
// order. The returned error covers harness failures only; scenario failures
// are reported through the results (and Failed).
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	if err := r.WaitReady(ctx); err != nil {
		return nil, err
	}

	results := make([]Result, len(scenarios))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	if r.opts.Parallelism > 0 {
		group.SetLimit(r.opts.Parallelism)
	} else {
		group.SetLimit(1)
	}

	for i, sc := range scenarios {
		group.Go(func() error {
			result := r.runOne(groupCtx, sc)
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	r.report(ctx, results)
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, sc Scenario) Result {
	ctx, cancel := context.WithTimeout(ctx, r.opts.ScenarioTimeout)
	defer cancel()

	logger := r.logger.With("scenario", sc.Name)
	t := &T{
		baseURL:    r.opts.BaseURL,
		logger:     logger,
		driver:     r.opts.Driver,
		httpClient: r.opts.HTTPClient,
	}

	started := time.Now()
	logger.InfoContext(ctx, "scenario started")

	err := r.execute(ctx, sc, t)
	result := Result{
		Scenario:  sc.Name,
		Status:    StatusPass,
		StartedAt: started,
		Duration:  time.Since(started),
	}
	if err != nil {
		result.Status = StatusFail
		result.Step = t.LastStep()
		result.Err = err
		logger.ErrorContext(ctx, "scenario failed", "step", result.Step, "error", err)
	} else {
		logger.InfoContext(ctx, "scenario passed", "duration", result.Duration)
	}
	return result
}

// execute runs the scenario body, converting a panic into a failure so one
// broken scenario cannot take the runner down.
func (r *Runner) execute(ctx context.Context, sc Scenario, t *T) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("scenario panicked: %v", rec)
		}
	}()
	return sc.Run(ctx, t)
}

func (r *Runner) report(ctx context.Context, results []Result) {
	for _, result := range results {
		metricResult := metrics.ResultPass
		if result.Status == StatusFail {
			metricResult = metrics.ResultFail
		}
		metrics.EmitScenarioRun(r.opts.Metrics, metrics.ScenarioMetric{
			Scenario: result.Scenario,
			Result:   metricResult,
			Duration: result.Duration,
			Err:      result.Err,
		})

		if r.opts.Recorder != nil {
			if err := r.opts.Recorder.RecordRun(ctx, result); err != nil {
				r.logger.WarnContext(ctx, "record run failed", "scenario", result.Scenario, "error", err)
			}
		}

		if result.Status == StatusFail && r.opts.Notifier != nil {
			payload := notify.ScenarioFailurePayload{
				Scenario:   result.Scenario,
				Step:       result.Step,
				TargetURL:  r.opts.BaseURL,
				Severity:   notify.SeverityCritical,
				OccurredAt: result.StartedAt,
			}
			if result.Err != nil {
				payload.Error = result.Err.Error()
				payload.ErrorClass = obserrors.Classify(result.Err)
			}
			if err := r.opts.Notifier.SendScenarioFailure(ctx, payload); err != nil {
				r.logger.WarnContext(ctx, "notify failure failed", "scenario", result.Scenario, "error", err)
			}
		}
	}
}
