// Command hubrunner-admin bundles operational helpers for the scenario
// runner: migrations, run-history inspection, demo data seeding, and
// session management against a CollabHub deployment.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/collabhub/hubclient/config"
	"github.com/collabhub/hubclient/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run run-results database migrations",
			run:         runMigrate,
		},
		"runs-list": {
			name:        "runs-list",
			description: "List recorded scenario runs",
			run:         runRunsList,
		},
		"runs-prune": {
			name:        "runs-prune",
			description: "Delete scenario runs older than a cutoff",
			run:         runRunsPrune,
		},
		"seed": {
			name:        "seed",
			description: "Provision demo accounts and content on the target deployment",
			run:         runSeed,
		},
		"login": {
			name:        "login",
			description: "Authenticate against the target and persist the session token",
			run:         runLogin,
		},
		"whoami": {
			name:        "whoami",
			description: "Resolve the persisted session token to a user",
			run:         runWhoami,
		},
		"logout": {
			name:        "logout",
			description: "Clear the persisted session token",
			run:         runLogout,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: hubrunner-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(os.Stdout, "  %-12s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
