// Package scenario provides the harness for end-to-end flows against a
// CollabHub deployment: scenario definitions, the per-execution toolkit,
// JSON cross-check assertions, and the runner that executes scenarios with
// bounded parallelism.
package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/collabhub/hubclient/internal/api"
	"github.com/collabhub/hubclient/internal/browser"
)

// Scenario is one end-to-end flow. Run provisions its own accounts and
// drives its own browser session through the toolkit, so scenarios are
// independent and can execute in parallel.
type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, t *T) error
}

// Status of one scenario execution.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Result records one scenario execution.
type Result struct {
	Scenario  string
	Status    Status
	Step      string
	Err       error
	StartedAt time.Time
	Duration  time.Duration
}

// Failed reports whether any result in the slice failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// T is the per-execution toolkit handed to a scenario: client and session
// factories plus step bookkeeping so failures name where they happened.
type T struct {
	baseURL    string
	logger     *slog.Logger
	driver     *browser.Driver
	httpClient *http.Client

	mu   sync.Mutex
	step string
}

// BaseURL returns the deployment under test.
func (t *T) BaseURL() string { return t.baseURL }

// Logger returns the scenario-scoped logger.
func (t *T) Logger() *slog.Logger { return t.logger }

// Step records the current step. The last recorded step is attached to the
// result when the scenario fails.
func (t *T) Step(name string) {
	t.mu.Lock()
	t.step = name
	t.mu.Unlock()
	t.logger.Debug("scenario step", "step", name)
}

// LastStep returns the most recently recorded step.
func (t *T) LastStep() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step
}

// NewAPIClient builds a fresh API client against the target. Scenarios
// create one per account they provision.
func (t *T) NewAPIClient() (*api.Client, error) {
	client, err := api.New(api.Options{
		BaseURL:    t.baseURL,
		HTTPClient: t.httpClient,
		Logger:     t.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	return client, nil
}

// OpenSession opens an isolated browser session on the target. The caller
// must Close it.
func (t *T) OpenSession(ctx context.Context) (*browser.Session, error) {
	if t.driver == nil {
		return nil, fmt.Errorf("no browser driver configured")
	}
	return t.driver.OpenSession(ctx, t.baseURL)
}
