// Package scenarios holds the end-to-end flows run against a CollabHub
// deployment. Each flow provisions its own accounts over the API, drives an
// isolated browser session, asserts visible confirmation text, and
// cross-checks the mutation with a direct API read.
package scenarios

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/collabhub/hubclient/internal/api"
	"github.com/collabhub/hubclient/internal/browser"
	"github.com/collabhub/hubclient/internal/domain/model"
	"github.com/collabhub/hubclient/internal/scenario"
	"github.com/collabhub/hubclient/internal/testutil"
)

// debounceSettle is how long a session waits for the app's typed-input
// debounce plus the resulting fetch to settle.
const debounceSettle = 2 * time.Second

const provisionPassword = "e2e-Hub-Pass-1"

// All returns every scenario in a stable order.
func All() []scenario.Scenario {
	return []scenario.Scenario{
		ProfileSkills(),
		StartupApplication(),
		UpdatePosting(),
		StartupInterest(),
		Search(),
	}
}

// ByName filters All by scenario name. Unknown names are reported as an error.
func ByName(names []string) ([]scenario.Scenario, error) {
	if len(names) == 0 {
		return All(), nil
	}
	byName := make(map[string]scenario.Scenario)
	for _, sc := range All() {
		byName[sc.Name] = sc
	}

	out := make([]scenario.Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		out = append(out, sc)
	}
	return out, nil
}

// provisionAccount registers a fresh account with the given role and
// returns an API client already holding its tokens.
func provisionAccount(ctx context.Context, t *scenario.T, role model.Role, prefix string) (*api.Client, model.User, error) {
	client, err := t.NewAPIClient()
	if err != nil {
		return nil, model.User{}, err
	}

	email := testutil.UniqueEmail(prefix)
	username := strings.Split(email, "@")[0]
	result, err := client.Register(ctx, api.RegisterRequest{
		Email:     email,
		Username:  username,
		Password:  provisionPassword,
		Password2: provisionPassword,
		FirstName: strings.ToUpper(prefix[:1]) + prefix[1:],
		LastName:  "Tester",
		Role:      role,
	})
	if err != nil {
		return nil, model.User{}, fmt.Errorf("provision %s account: %w", role, err)
	}
	return client, result.User, nil
}

// openAuthedSession opens a browser session already carrying the client's
// token: load the login view to be on the app origin, seed localStorage,
// then navigate to path so the app boots logged in.
func openAuthedSession(ctx context.Context, t *scenario.T, client *api.Client, path string) (*browser.Session, error) {
	session, err := t.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := session.Navigate(ctx, "/login"); err != nil {
		_ = session.Close()
		return nil, err
	}
	if err := session.SeedTokens(ctx, client.Token()); err != nil {
		_ = session.Close()
		return nil, err
	}
	if err := session.Navigate(ctx, path); err != nil {
		_ = session.Close()
		return nil, err
	}
	return session, nil
}

// expectVisible fails unless the page's rendered text contains want.
func expectVisible(ctx context.Context, session *browser.Session, want string) error {
	found, err := session.ContainsVisibleText(ctx, want)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("expected page to show %q", want)
	}
	return nil
}

// expectNotVisible fails if the page's rendered text contains text.
func expectNotVisible(ctx context.Context, session *browser.Session, text string) error {
	found, err := session.ContainsVisibleText(ctx, text)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("expected page not to show %q", text)
	}
	return nil
}

// uniqueName suffixes a label so parallel runs against a shared deployment
// cannot collide.
func uniqueName(label string) string {
	return label + " " + uuid.NewString()[:8]
}
