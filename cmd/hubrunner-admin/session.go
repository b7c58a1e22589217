package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/collabhub/hubclient/internal/bootstrap"
	"github.com/collabhub/hubclient/internal/devseed"
	"github.com/collabhub/hubclient/internal/state"
)

func runSeed(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := devseed.Run(ctx.Ctx, ctx.Config.Target.BaseURL, ctx.Logger)
	if err != nil {
		return err
	}

	if err = writef(os.Stdout, "Seeded demo data on %s\n", ctx.Config.Target.BaseURL); err != nil {
		return err
	}
	if err = writef(os.Stdout, "  founder: %s\n  talent:  %s\n  password: %s\n",
		result.FounderEmail, result.TalentEmail, devseed.Password); err != nil {
		return err
	}
	return writef(os.Stdout, "  startup: %s (id %d)\n  opportunity: %s (id %d)\n",
		result.Startup.Name, result.Startup.ID, result.Opportunity.Title, result.Opportunity.ID)
}

func runLogin(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("both -email and -password are required")
	}

	client, err := bootstrap.BuildAPIClient(ctx.Config.Target, ctx.Logger)
	if err != nil {
		return err
	}
	tokens, cleanup, err := bootstrap.BuildTokenStore(&ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := client.Login(ctx.Ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	cache := bootstrap.BuildSessionCache(client, tokens, nil, ctx.Logger)
	cache.SetToken(ctx.Ctx, result.Pair)
	cache.SetUser(result.User)

	return writef(os.Stdout, "Logged in as %s (%s)\n", result.User.Email, result.User.Role)
}

func runWhoami(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cache, cleanup, err := buildCache(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	cache.Init(ctx.Ctx)
	if !cache.IsLoggedIn() {
		return errors.New("no valid session; run login first")
	}

	user := cache.User()
	if err = writef(os.Stdout, "Logged in as %s (%s)\n", user.Email, user.Role); err != nil {
		return err
	}
	cache.LoadNotifications(ctx.Ctx)
	return writef(os.Stdout, "  unread notifications: %d\n", cache.UnreadCount())
}

func runLogout(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cache, cleanup, err := buildCache(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	cache.Logout(ctx.Ctx)
	return writef(os.Stdout, "Session cleared\n")
}

func buildCache(ctx *commandContext) (*state.Cache, func(), error) {
	client, err := bootstrap.BuildAPIClient(ctx.Config.Target, ctx.Logger)
	if err != nil {
		return nil, nil, err
	}
	tokens, cleanup, err := bootstrap.BuildTokenStore(&ctx.Config, ctx.Logger)
	if err != nil {
		return nil, nil, err
	}
	return bootstrap.BuildSessionCache(client, tokens, nil, ctx.Logger), cleanup, nil
}
