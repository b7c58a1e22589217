package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// Storage keys the web app reads its session from. collabhub_access_token
// is canonical; auth_token is written too so older app builds still pick
// the session up.
const (
	storageKeyAccess  = "collabhub_access_token"
	storageKeyRefresh = "collabhub_refresh_token"
	storageKeyLegacy  = "auth_token"
)

// Session is one isolated page against the target app. Not safe for
// concurrent use; each scenario drives exactly one session.
type Session struct {
	page       *rod.Page
	baseURL    string
	navTimeout time.Duration
	logger     *slog.Logger
}

// Close releases the page and its incognito context.
func (s *Session) Close() error {
	return s.page.Close()
}

// Navigate loads the given app path (or absolute URL) and waits for the
// load event.
func (s *Session) Navigate(ctx context.Context, path string) error {
	target := path
	if strings.HasPrefix(path, "/") {
		target = s.baseURL + path
	}
	page := s.page.Context(ctx).Timeout(s.navTimeout)
	if err := page.Navigate(target); err != nil {
		return fmt.Errorf("navigate %s: %w", target, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load %s: %w", target, err)
	}
	return nil
}

// SeedTokens writes the token pair into the app's localStorage. The page
// must already be on the app origin (navigate anywhere on it first);
// reload or navigate afterwards so the app boots with the session present.
func (s *Session) SeedTokens(ctx context.Context, pair model.TokenPair) error {
	_, err := s.page.Context(ctx).Eval(`(access, refresh, legacy) => {
		localStorage.setItem("`+storageKeyAccess+`", access);
		localStorage.setItem("`+storageKeyLegacy+`", legacy);
		if (refresh) {
			localStorage.setItem("`+storageKeyRefresh+`", refresh);
		}
	}`, pair.Access, pair.Refresh, pair.Access)
	if err != nil {
		return fmt.Errorf("seed tokens: %w", err)
	}
	return nil
}

// LocalStorage reads one localStorage key, returning "" when unset.
func (s *Session) LocalStorage(ctx context.Context, key string) (string, error) {
	obj, err := s.page.Context(ctx).Eval(`(key) => localStorage.getItem(key) || ""`, key)
	if err != nil {
		return "", fmt.Errorf("read localStorage %s: %w", key, err)
	}
	return obj.Value.Str(), nil
}

// StoredAccessToken reads the canonical access token key.
func (s *Session) StoredAccessToken(ctx context.Context) (string, error) {
	return s.LocalStorage(ctx, storageKeyAccess)
}

// Click clicks the first element matching the selector.
func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

// Fill clears the matched input and types the given text into it.
func (s *Session) Fill(ctx context.Context, selector, text string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("select text %s: %w", selector, err)
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("input %s: %w", selector, err)
	}
	return nil
}

// SelectOption picks a <select> option by its visible text.
func (s *Session) SelectOption(ctx context.Context, selector, optionText string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Select([]string{optionText}, true, rod.SelectorTypeText); err != nil {
		return fmt.Errorf("select option %q in %s: %w", optionText, selector, err)
	}
	return nil
}

// Text returns the rendered text of the first element matching the selector.
func (s *Session) Text(ctx context.Context, selector string) (string, error) {
	el, err := s.element(ctx, selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read text %s: %w", selector, err)
	}
	return text, nil
}

// WaitVisible blocks until the selector matches a visible element.
func (s *Session) WaitVisible(ctx context.Context, selector string) error {
	el, err := s.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("wait visible %s: %w", selector, err)
	}
	return nil
}

// WaitIdle waits for the page's network and rendering to settle, bounded by
// the given timeout. Used after typed input to ride out client-side
// debounce before asserting results.
func (s *Session) WaitIdle(ctx context.Context, timeout time.Duration) error {
	if err := s.page.Context(ctx).WaitIdle(timeout); err != nil {
		return fmt.Errorf("wait idle: %w", err)
	}
	return nil
}

// HTML returns the current page markup.
func (s *Session) HTML(ctx context.Context) (string, error) {
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("read page html: %w", err)
	}
	return html, nil
}

// URL returns the page's current location.
func (s *Session) URL(ctx context.Context) (string, error) {
	info, err := s.page.Context(ctx).Info()
	if err != nil {
		return "", fmt.Errorf("read page info: %w", err)
	}
	return info.URL, nil
}

// ContainsVisibleText reports whether the page's rendered text contains
// want. Script and style content is ignored.
func (s *Session) ContainsVisibleText(ctx context.Context, want string) (bool, error) {
	html, err := s.HTML(ctx)
	if err != nil {
		return false, err
	}
	text, err := VisibleText(strings.NewReader(html))
	if err != nil {
		return false, err
	}
	return strings.Contains(text, want), nil
}

func (s *Session) element(ctx context.Context, selector string) (*rod.Element, error) {
	el, err := s.page.Context(ctx).Timeout(s.navTimeout).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("element %s: %w", selector, err)
	}
	return el, nil
}
