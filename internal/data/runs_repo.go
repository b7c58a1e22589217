// Package data persists scenario run results in Postgres.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/collabhub/hubclient/internal/data/pgxutil"
	apperrors "github.com/collabhub/hubclient/internal/errors"
	"github.com/collabhub/hubclient/internal/scenario"
)

// ErrRunsNotConfigured is returned when the repo has no database handle.
var ErrRunsNotConfigured = errors.New("run repository not configured")

// RunRecord is one persisted scenario execution.
type RunRecord struct {
	ID         int64     `db:"id"`
	Scenario   string    `db:"scenario"`
	Status     string    `db:"status"`
	Step       string    `db:"step"`
	Error      string    `db:"error"`
	StartedAt  time.Time `db:"started_at"`
	DurationMS int64     `db:"duration_ms"`
	CreatedAt  time.Time `db:"created_at"`
}

// RunRepo stores scenario results in the scenario_runs table.
type RunRepo struct {
	DB *sql.DB
}

var _ scenario.RunRecorder = (*RunRepo)(nil)

// NewRunRepo constructs a RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{DB: db}
}

// RecordRun inserts one scenario result.
func (r *RunRepo) RecordRun(ctx context.Context, result scenario.Result) error {
	if r == nil || r.DB == nil {
		return ErrRunsNotConfigured
	}
	if result.Scenario == "" {
		return apperrors.ValidationField("scenario", "scenario name is required")
	}

	errText := ""
	if result.Err != nil {
		errText = result.Err.Error()
	}

	const query = `
		INSERT INTO scenario_runs (scenario, status, step, error, started_at, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.DB.ExecContext(ctx, query,
		result.Scenario, string(result.Status), result.Step, errText,
		result.StartedAt.UTC(), result.Duration.Milliseconds()); err != nil {
		return fmt.Errorf("insert scenario run: %w", apperrors.MapDBError(err))
	}
	return nil
}

// ListRunsOptions filters List. Zero values mean "no filter".
type ListRunsOptions struct {
	Scenario string
	Status   scenario.Status
	Limit    int
}

// List returns recorded runs, newest first.
func (r *RunRepo) List(ctx context.Context, opts ListRunsOptions) ([]RunRecord, error) {
	if r == nil || r.DB == nil {
		return nil, ErrRunsNotConfigured
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	const query = `
		SELECT id, scenario, status, step, error, started_at, duration_ms, created_at
		FROM scenario_runs
		WHERE ($1 = '' OR scenario = $1)
			AND ($2 = '' OR status = $2)
		ORDER BY started_at DESC, id DESC
		LIMIT $3`

	var records []RunRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, opts.Scenario, string(opts.Status), limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[RunRecord])
		if err != nil {
			return err
		}
		records = collected
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list scenario runs: %w", err)
	}
	return records, nil
}

// LastRun returns the most recent run of one scenario.
func (r *RunRepo) LastRun(ctx context.Context, name string) (*RunRecord, error) {
	records, err := r.List(ctx, ListRunsOptions{Scenario: name, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("no runs recorded for scenario %q", name))
	}
	return &records[0], nil
}

// Prune deletes runs that started before the cutoff and reports how many
// rows went away.
func (r *RunRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	if r == nil || r.DB == nil {
		return 0, ErrRunsNotConfigured
	}

	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM scenario_runs WHERE started_at < $1`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune scenario runs: %w", apperrors.MapDBError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return affected, nil
}
