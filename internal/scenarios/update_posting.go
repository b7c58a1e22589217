package scenarios

import (
	"context"
	"fmt"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/scenario"
)

// UpdatePosting covers posting a progress update: a founder publishes an
// update from the startup page and the update text appears on the page and
// in the updates listing over the API.
func UpdatePosting() scenario.Scenario {
	return scenario.Scenario{
		Name:        "update_posting",
		Description: "founder posts a progress update on the startup page",
		Run:         runUpdatePosting,
	}
}

func runUpdatePosting(ctx context.Context, t *scenario.T) error {
	t.Step("provision founder account")
	founder, _, err := provisionAccount(ctx, t, model.RoleFounder, "founder")
	if err != nil {
		return err
	}

	t.Step("create startup")
	startup, err := founder.CreateStartup(ctx, model.CreateStartupRequest{
		Name:        uniqueName("Mapletide"),
		Description: "Tide forecasting for coastal farms.",
		Industry:    "agritech",
		Stage:       model.StartupStageEarly,
	})
	if err != nil {
		return err
	}

	t.Step("open startup view")
	session, err := openAuthedSession(ctx, t, founder, fmt.Sprintf("/startups/%d", startup.ID))
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	updateTitle := uniqueName("Pilot signed")
	const updateContent = "Signed our first pilot farm this week. Sensors ship Monday."

	t.Step("post update")
	if err := session.Fill(ctx, `[data-testid="update-title-input"]`, updateTitle); err != nil {
		return err
	}
	if err := session.Fill(ctx, `[data-testid="update-content-input"]`, updateContent); err != nil {
		return err
	}
	if err := session.Click(ctx, `[data-testid="post-update-button"]`); err != nil {
		return err
	}

	t.Step("assert update visible on page")
	if err := session.WaitVisible(ctx, `[data-testid="toast-success"]`); err != nil {
		return err
	}
	if err := expectVisible(ctx, session, updateTitle); err != nil {
		return err
	}
	if err := expectVisible(ctx, session, updateContent); err != nil {
		return err
	}

	t.Step("cross-check updates listing over API")
	updates, err := founder.StartupUpdates(ctx, startup.ID)
	if err != nil {
		return err
	}
	return scenario.CheckCount(updates, fmt.Sprintf("[?title=='%s']", updateTitle), 1)
}
