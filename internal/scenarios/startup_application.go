package scenarios

import (
	"context"
	"fmt"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/scenario"
)

// StartupApplication covers applying to an opportunity: a founder sets up a
// startup and an open opportunity over the API, then a talent applies
// through the opportunity page with a cover letter and the submission is
// confirmed both in the UI and in the talent's application listing.
func StartupApplication() scenario.Scenario {
	return scenario.Scenario{
		Name:        "startup_application",
		Description: "talent applies to a founder's opportunity",
		Run:         runStartupApplication,
	}
}

func runStartupApplication(ctx context.Context, t *scenario.T) error {
	t.Step("provision founder account")
	founder, _, err := provisionAccount(ctx, t, model.RoleFounder, "founder")
	if err != nil {
		return err
	}

	t.Step("create startup and opportunity")
	startup, err := founder.CreateStartup(ctx, model.CreateStartupRequest{
		Name:        uniqueName("Quantifoil"),
		Tagline:     "Logistics without the spreadsheets",
		Description: "Route optimisation for regional freight.",
		Industry:    "logistics",
		Stage:       model.StartupStageMVP,
	})
	if err != nil {
		return err
	}

	opportunity, err := founder.CreateOpportunity(ctx, model.CreateOpportunityRequest{
		Title:       uniqueName("Backend Engineer"),
		Type:        model.OpportunityTypeJob,
		Description: "Own the routing service.",
		IsRemote:    true,
		StartupID:   &startup.ID,
	})
	if err != nil {
		return err
	}

	t.Step("provision talent account")
	talent, _, err := provisionAccount(ctx, t, model.RoleTalent, "talent")
	if err != nil {
		return err
	}

	t.Step("open opportunity view")
	session, err := openAuthedSession(ctx, t, talent, fmt.Sprintf("/opportunities/%d", opportunity.ID))
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	t.Step("submit application form")
	if err := session.Click(ctx, `[data-testid="apply-button"]`); err != nil {
		return err
	}
	if err := session.Fill(ctx, `[data-testid="cover-letter-input"]`,
		"I have shipped routing systems before and would love to help."); err != nil {
		return err
	}
	if err := session.Click(ctx, `[data-testid="submit-application-button"]`); err != nil {
		return err
	}

	t.Step("assert submission confirmation")
	if err := session.WaitVisible(ctx, `[data-testid="toast-success"]`); err != nil {
		return err
	}
	if err := expectVisible(ctx, session, "Application submitted"); err != nil {
		return err
	}

	t.Step("cross-check application listing over API")
	applications, err := talent.MyApplications(ctx)
	if err != nil {
		return err
	}
	return scenario.CheckCount(applications,
		fmt.Sprintf("[?opportunity.id==`%d`]", opportunity.ID), 1)
}
