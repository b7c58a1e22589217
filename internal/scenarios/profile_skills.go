package scenarios

import (
	"context"
	"fmt"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/scenario"
)

// ProfileSkills covers the profile skill lifecycle: a fresh talent adds a
// skill through the profile view, sees it confirmed and listed, removes it,
// and sees it gone. The skill list is cross-checked over the API after both
// mutations.
func ProfileSkills() scenario.Scenario {
	return scenario.Scenario{
		Name:        "profile_skills",
		Description: "talent adds and removes a profile skill",
		Run:         runProfileSkills,
	}
}

func runProfileSkills(ctx context.Context, t *scenario.T) error {
	const skillName = "Kubernetes"

	t.Step("provision talent account")
	client, _, err := provisionAccount(ctx, t, model.RoleTalent, "talent")
	if err != nil {
		return err
	}

	t.Step("open profile view")
	session, err := openAuthedSession(ctx, t, client, "/profile")
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	t.Step("add skill")
	if err := session.Fill(ctx, `[data-testid="skill-input"]`, skillName); err != nil {
		return err
	}
	if err := session.SelectOption(ctx, `[data-testid="skill-proficiency"]`, "Intermediate"); err != nil {
		return err
	}
	if err := session.Click(ctx, `[data-testid="add-skill-button"]`); err != nil {
		return err
	}

	t.Step("assert skill added confirmation")
	if err := session.WaitVisible(ctx, `[data-testid="toast-success"]`); err != nil {
		return err
	}
	if err := expectVisible(ctx, session, "Skill added"); err != nil {
		return err
	}
	if err := expectVisible(ctx, session, skillName); err != nil {
		return err
	}

	t.Step("cross-check skill over API")
	skills, err := client.MySkills(ctx)
	if err != nil {
		return err
	}
	if err := scenario.CheckTrue(skills, fmt.Sprintf("contains([].skill.name, '%s')", skillName)); err != nil {
		return err
	}
	if err := scenario.CheckCount(skills,
		fmt.Sprintf("[?skill.name=='%s' && proficiency=='intermediate']", skillName), 1); err != nil {
		return err
	}

	var skillID int64
	for _, s := range skills {
		if s.Skill.Name == skillName {
			skillID = s.ID
		}
	}

	t.Step("remove skill")
	if err := session.Click(ctx, fmt.Sprintf(`[data-testid="remove-skill-%d"]`, skillID)); err != nil {
		return err
	}
	if err := session.WaitIdle(ctx, debounceSettle); err != nil {
		return err
	}
	if err := expectNotVisible(ctx, session, skillName); err != nil {
		return err
	}

	t.Step("cross-check removal over API")
	skills, err = client.MySkills(ctx)
	if err != nil {
		return err
	}
	return scenario.CheckCount(skills, fmt.Sprintf("[?skill.name=='%s']", skillName), 0)
}
