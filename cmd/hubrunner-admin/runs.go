package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/collabhub/hubclient/internal/bootstrap"
	"github.com/collabhub/hubclient/internal/data"
	"github.com/collabhub/hubclient/internal/scenario"
)

func connectRunsDB(ctx *commandContext) (*sql.DB, error) {
	if !ctx.Config.Postgres.Enabled {
		return nil, errors.New("run-results database is disabled; set DB_ENABLED=true")
	}
	return bootstrap.ConnectDB(ctx.Config.Postgres, ctx.Logger)
}

func runMigrate(ctx *commandContext, _ []string) error {
	db, err := connectRunsDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB(ctx, db)

	return bootstrap.RunMigrations(ctx.Ctx, db, ctx.Logger)
}

func runRunsList(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("runs-list", flag.ContinueOnError)
	scenarioName := fs.String("scenario", "", "filter by scenario name")
	status := fs.String("status", "", "filter by status (pass|fail)")
	limit := fs.Int("limit", 50, "maximum rows to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := connectRunsDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB(ctx, db)

	repo := data.NewRunRepo(db)
	records, err := repo.List(ctx.Ctx, data.ListRunsOptions{
		Scenario: *scenarioName,
		Status:   scenario.Status(*status),
		Limit:    *limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if _, err = fmt.Fprintln(w, "ID\tSCENARIO\tSTATUS\tSTEP\tSTARTED\tDURATION\tERROR"); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%dms\t%s\n",
			rec.ID, rec.Scenario, rec.Status, rec.Step,
			rec.StartedAt.Local().Format(time.RFC3339), rec.DurationMS, rec.Error); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runRunsPrune(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("runs-prune", flag.ContinueOnError)
	olderThan := fs.Duration("older-than", 7*24*time.Hour, "delete runs that started before now minus this duration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := connectRunsDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB(ctx, db)

	cutoff := time.Now().Add(-*olderThan)
	pruned, err := data.NewRunRepo(db).Prune(ctx.Ctx, cutoff)
	if err != nil {
		return err
	}

	ctx.Logger.InfoContext(ctx.Ctx, "pruned scenario runs", "count", pruned, "cutoff", cutoff)
	return nil
}

func closeDB(ctx *commandContext, db *sql.DB) {
	if err := db.Close(); err != nil {
		ctx.Logger.ErrorContext(ctx.Ctx, "close database failed", "error", err)
	}
}
