package scenarios

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/collabhub/hubclient/internal/browser"
	"github.com/collabhub/hubclient/internal/scenario"
	"github.com/collabhub/hubclient/internal/testutil"
)

// TestScenarios_EndToEnd runs every flow against the deployment named by
// HUB_E2E_BASE_URL. Needs both a reachable target and HUB_E2E_BROWSER=1.
func TestScenarios_EndToEnd(t *testing.T) {
	testutil.SkipIfNoTargetAPI(t)
	testutil.SkipIfNoBrowser(t)

	driver := browser.NewDriver(browser.DefaultConfig(), nil)
	t.Cleanup(func() {
		if err := driver.Shutdown(context.Background()); err != nil {
			t.Logf("browser shutdown: %v", err)
		}
	})

	runner, err := scenario.NewRunner(scenario.RunnerOptions{
		BaseURL:         testutil.TargetBaseURL(),
		Driver:          driver,
		Parallelism:     2,
		ScenarioTimeout: 3 * time.Minute,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	t.Cleanup(cancel)

	results, err := runner.Run(ctx, All())
	require.NoError(t, err)

	for _, result := range results {
		if result.Status == scenario.StatusFail {
			t.Errorf("scenario %s failed at step %q: %v", result.Scenario, result.Step, result.Err)
		}
	}
}
