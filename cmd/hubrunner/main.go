// Command hubrunner executes the CollabHub end-to-end browser scenarios
// against a deployed instance and reports the results.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/collabhub/hubclient/internal/bootstrap"
	"github.com/collabhub/hubclient/internal/data"
	"github.com/collabhub/hubclient/internal/scenario"
	"github.com/collabhub/hubclient/internal/scenarios"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := bootstrap.InitLogger()
	failed, err := run(ctx, logger)
	if err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
	if failed {
		os.Exit(1) //nolint:forbidigo // CI consumes the exit status to detect scenario failures.
	}
}

func run(ctx context.Context, logger *slog.Logger) (failed bool, err error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return false, err
	}

	selected, err := scenarios.ByName(cfg.Runner.Scenarios)
	if err != nil {
		return false, err
	}

	logger.InfoContext(ctx, "starting hubrunner",
		"target", cfg.Target.BaseURL,
		"scenarios", len(selected),
		"parallelism", cfg.Runner.Parallelism,
		"headless", cfg.Browser.Headless)

	metricsSink, err := bootstrap.BuildMetrics(cfg.Observability.Metrics, logger)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := metricsSink.Close(); cerr != nil {
			logger.WarnContext(ctx, "close statsd client failed", "error", cerr)
		}
	}()

	notifier, err := bootstrap.BuildNotifier(cfg.Observability.Notifications)
	if err != nil {
		return false, err
	}

	var recorder scenario.RunRecorder
	if cfg.Postgres.Enabled {
		db, dbErr := bootstrap.ConnectDB(cfg.Postgres, logger)
		if dbErr != nil {
			return false, dbErr
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close database failed", "error", cerr)
			}
		}()

		if cfg.Postgres.RunMigrationsOnStart {
			if mErr := bootstrap.RunMigrations(ctx, db, logger); mErr != nil {
				return false, mErr
			}
		}
		recorder = data.NewRunRepo(db)
	}

	driver := bootstrap.BuildDriver(cfg.Browser, logger)
	if err = driver.Start(ctx); err != nil {
		return false, err
	}
	defer func() {
		if serr := driver.Shutdown(context.Background()); serr != nil {
			logger.ErrorContext(ctx, "browser shutdown failed", "error", serr)
		}
	}()

	runner, err := scenario.NewRunner(scenario.RunnerOptions{
		BaseURL:          cfg.Target.BaseURL,
		Driver:           driver,
		Parallelism:      cfg.Runner.Parallelism,
		ScenarioTimeout:  cfg.Runner.ScenarioTimeout,
		ReadinessTimeout: cfg.Runner.ReadinessTimeout,
		Metrics:          metricsSink,
		Notifier:         notifier,
		Recorder:         recorder,
		Logger:           logger,
	})
	if err != nil {
		return false, err
	}

	results, err := runner.Run(ctx, selected)
	if err != nil {
		return false, err
	}

	for _, result := range results {
		if result.Status == scenario.StatusFail {
			logger.ErrorContext(ctx, "scenario result",
				"scenario", result.Scenario, "status", result.Status,
				"step", result.Step, "duration", result.Duration, "error", result.Err)
			continue
		}
		logger.InfoContext(ctx, "scenario result",
			"scenario", result.Scenario, "status", result.Status, "duration", result.Duration)
	}

	return scenario.Failed(results), nil
}
