package scenarios

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/scenario"
)

// Search covers the startup search view: two startups with distinct names
// are seeded, the search box is fed a fragment matching only one of them,
// and after the input debounce settles exactly the matching startup is
// listed. The same query is cross-checked over the search API.
func Search() scenario.Scenario {
	return scenario.Scenario{
		Name:        "search",
		Description: "startup search matches by name fragment after debounce",
		Run:         runSearch,
	}
}

func runSearch(ctx context.Context, t *scenario.T) error {
	t.Step("provision founder account")
	founder, _, err := provisionAccount(ctx, t, model.RoleFounder, "founder")
	if err != nil {
		return err
	}

	// The fragment is unique per run so the match set on a shared
	// deployment is exactly one startup.
	fragment := "Zephyrine" + uuid.NewString()[:6]
	matchingName := fragment + " Labs"
	otherName := uniqueName("Ordinary Ventures")

	t.Step("seed startups")
	if _, err := founder.CreateStartup(ctx, model.CreateStartupRequest{
		Name:        matchingName,
		Description: "Wind pattern analytics for offshore installs.",
		Industry:    "energy",
		Stage:       model.StartupStageMVP,
	}); err != nil {
		return err
	}
	if _, err := founder.CreateStartup(ctx, model.CreateStartupRequest{
		Name:        otherName,
		Description: "A deliberately unrelated listing.",
		Industry:    "fintech",
		Stage:       model.StartupStageIdea,
	}); err != nil {
		return err
	}

	t.Step("open search view")
	session, err := openAuthedSession(ctx, t, founder, "/search")
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	t.Step("type search query")
	if err := session.Fill(ctx, `[data-testid="search-input"]`, fragment); err != nil {
		return err
	}

	// The search box debounces typed input; wait it out once before
	// asserting, per the harness's no-retry policy.
	t.Step("wait for debounce")
	if err := session.WaitIdle(ctx, debounceSettle); err != nil {
		return err
	}

	t.Step("assert search results")
	if err := expectVisible(ctx, session, matchingName); err != nil {
		return err
	}
	if err := expectNotVisible(ctx, session, otherName); err != nil {
		return err
	}

	t.Step("cross-check search over API")
	results, err := founder.SearchStartups(ctx, model.StartupSearchOptions{Q: fragment})
	if err != nil {
		return err
	}
	if err := scenario.CheckCount(results, fmt.Sprintf("[?name=='%s']", matchingName), 1); err != nil {
		return err
	}
	return scenario.CheckCount(results, fmt.Sprintf("[?name=='%s']", otherName), 0)
}
