package scenarios

import (
	"context"
	"fmt"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/scenario"
)

// StartupInterest covers the lightweight interest flow: a talent expresses
// interest in a startup from its page, sees a confirmation, and the founder
// sees the interest in the startup's interest listing.
func StartupInterest() scenario.Scenario {
	return scenario.Scenario{
		Name:        "startup_interest",
		Description: "talent expresses interest, founder sees it listed",
		Run:         runStartupInterest,
	}
}

func runStartupInterest(ctx context.Context, t *scenario.T) error {
	t.Step("provision founder account")
	founder, _, err := provisionAccount(ctx, t, model.RoleFounder, "founder")
	if err != nil {
		return err
	}

	t.Step("create startup")
	startup, err := founder.CreateStartup(ctx, model.CreateStartupRequest{
		Name:        uniqueName("Briarforge"),
		Description: "3D-printed replacement parts for legacy machinery.",
		Industry:    "manufacturing",
		Stage:       model.StartupStageIdea,
	})
	if err != nil {
		return err
	}

	t.Step("provision talent account")
	talent, talentUser, err := provisionAccount(ctx, t, model.RoleTalent, "talent")
	if err != nil {
		return err
	}

	t.Step("open startup view as talent")
	session, err := openAuthedSession(ctx, t, talent, fmt.Sprintf("/startups/%d", startup.ID))
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	t.Step("express interest")
	if err := session.Click(ctx, `[data-testid="express-interest-button"]`); err != nil {
		return err
	}

	t.Step("assert interest confirmation")
	if err := session.WaitVisible(ctx, `[data-testid="toast-success"]`); err != nil {
		return err
	}
	if err := expectVisible(ctx, session, "Interest recorded"); err != nil {
		return err
	}

	t.Step("cross-check interest listing as founder")
	interests, err := founder.StartupInterests(ctx, startup.ID)
	if err != nil {
		return err
	}
	return scenario.CheckCount(interests,
		fmt.Sprintf("[?user.id==`%d`]", talentUser.ID), 1)
}
