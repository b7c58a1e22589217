// Package devseed provisions demo accounts and content against a running
// CollabHub deployment through the public API. It gives developers a
// populated instance to click around in without hand-registering users.
package devseed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/collabhub/hubclient/internal/api"
	"github.com/collabhub/hubclient/internal/domain/model"
)

// Password is shared by all seeded demo accounts.
const Password = "demo-Hub-Pass-1"

// Result describes what Run created.
type Result struct {
	FounderEmail string
	TalentEmail  string

	Founder     model.User
	Talent      model.User
	Startup     model.Startup
	Opportunity model.Opportunity
}

// Run registers a founder and a talent account, then builds out a startup
// with an update, an open opportunity, one application, and one expression
// of interest. Each invocation creates a fresh disjoint data set.
func Run(ctx context.Context, baseURL string, logger *slog.Logger) (Result, error) {
	suffix := uuid.NewString()[:8]
	result := Result{
		FounderEmail: fmt.Sprintf("demo-founder-%s@collabhub.dev", suffix),
		TalentEmail:  fmt.Sprintf("demo-talent-%s@collabhub.dev", suffix),
	}

	founder, err := registerAccount(ctx, baseURL, logger, result.FounderEmail, model.RoleFounder)
	if err != nil {
		return result, fmt.Errorf("register founder: %w", err)
	}
	result.Founder = founder.user

	talent, err := registerAccount(ctx, baseURL, logger, result.TalentEmail, model.RoleTalent)
	if err != nil {
		return result, fmt.Errorf("register talent: %w", err)
	}
	result.Talent = talent.user

	if result.Startup, err = seedStartup(ctx, founder.client, suffix, logger); err != nil {
		return result, err
	}
	if result.Opportunity, err = seedOpportunity(ctx, founder.client, result.Startup, suffix); err != nil {
		return result, err
	}
	if err = seedTalentActivity(ctx, talent.client, result.Startup, result.Opportunity); err != nil {
		return result, err
	}

	if logger != nil {
		logger.InfoContext(ctx, "demo data seeded",
			"founder", result.FounderEmail,
			"talent", result.TalentEmail,
			"startup", result.Startup.Name,
			"opportunity", result.Opportunity.Title)
	}
	return result, nil
}

type seededAccount struct {
	client *api.Client
	user   model.User
}

func registerAccount(ctx context.Context, baseURL string, logger *slog.Logger, email string, role model.Role) (seededAccount, error) {
	client, err := api.New(api.Options{BaseURL: baseURL, Logger: logger})
	if err != nil {
		return seededAccount{}, err
	}

	username := email[:len(email)-len("@collabhub.dev")]
	reg, err := client.Register(ctx, api.RegisterRequest{
		Email:    email,
		Username: username,
		Password: Password,
		Role:     role,
	})
	if err != nil {
		return seededAccount{}, err
	}
	if logger != nil {
		logger.InfoContext(ctx, "registered demo account", "email", email, "role", role)
	}
	return seededAccount{client: client, user: reg.User}, nil
}

func seedStartup(ctx context.Context, founder *api.Client, suffix string, logger *slog.Logger) (model.Startup, error) {
	startup, err := founder.CreateStartup(ctx, model.CreateStartupRequest{
		Name:        "Demo Ventures " + suffix,
		Tagline:     "Sample startup for local development",
		Description: "Seeded startup used to exercise the CollabHub UI locally.",
		Industry:    "software",
		Stage:       model.StartupStageEarly,
		IsRemote:    true,
	})
	if err != nil {
		return model.Startup{}, fmt.Errorf("create startup: %w", err)
	}

	if _, err = founder.PostStartupUpdate(ctx, startup.ID,
		"Kickoff update", "First update posted by the demo seeder."); err != nil {
		return startup, fmt.Errorf("post startup update: %w", err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "created demo startup", "startup", startup.Name, "id", startup.ID)
	}
	return startup, nil
}

func seedOpportunity(ctx context.Context, founder *api.Client, startup model.Startup, suffix string) (model.Opportunity, error) {
	opp, err := founder.CreateOpportunity(ctx, model.CreateOpportunityRequest{
		Title:          "Backend Engineer " + suffix,
		Type:           model.OpportunityTypeJob,
		Description:    "Seeded opportunity used to exercise application flows.",
		Organization:   startup.Name,
		IsRemote:       true,
		RequiredSkills: []string{"Go", "PostgreSQL"},
		StartupID:      &startup.ID,
	})
	if err != nil {
		return model.Opportunity{}, fmt.Errorf("create opportunity: %w", err)
	}
	return opp, nil
}

func seedTalentActivity(ctx context.Context, talent *api.Client, startup model.Startup, opp model.Opportunity) error {
	if _, err := talent.AddSkill(ctx, model.AddSkillRequest{
		Name:        "Go",
		Proficiency: model.ProficiencyAdvanced,
	}); err != nil {
		return fmt.Errorf("add talent skill: %w", err)
	}

	if _, err := talent.Apply(ctx, model.CreateApplicationRequest{
		OpportunityID: opp.ID,
		CoverLetter:   "Seeded application from the demo talent account.",
	}); err != nil {
		return fmt.Errorf("apply to opportunity: %w", err)
	}

	if _, err := talent.ExpressInterest(ctx, startup.ID, model.ExpressInterestRequest{
		Message: "Seeded interest from the demo talent account.",
	}); err != nil {
		return fmt.Errorf("express interest: %w", err)
	}
	return nil
}
