package api

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/collabhub/hubclient/internal/domain/model"
	apperrors "github.com/collabhub/hubclient/internal/errors"
)

// accessTokenLifetime mirrors the backend's SimpleJWT access lifetime.
// Refresh fires one minute early to avoid racing the expiry.
const (
	accessTokenLifetime = 60 * time.Minute
	refreshSkew         = time.Minute
)

// authorize attaches the bearer header to an outbound request using the
// oauth2 token conventions.
func (c *Client) authorize(req *http.Request) {
	tok := c.oauthToken()
	if tok.AccessToken == "" {
		return
	}
	tok.SetAuthHeader(req)
}

// oauthToken returns the installed pair as an oauth2 token.
func (c *Client) oauthToken() *oauth2.Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &oauth2.Token{
		AccessToken:  c.token.Access,
		RefreshToken: c.token.Refresh,
		TokenType:    "Bearer",
		Expiry:       c.expiry,
	}
}

// TokenSource returns an oauth2.TokenSource that refreshes the access token
// through /api/v1/auth/refresh/ when it is near expiry. Callers that build
// their own http.Client can wrap it with oauth2.NewClient.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, &refreshTokenSource{ctx: ctx, client: c})
}

// refreshTokenSource implements oauth2.TokenSource on top of the backend's
// first-party refresh endpoint.
type refreshTokenSource struct {
	ctx    context.Context
	client *Client
}

func (s *refreshTokenSource) Token() (*oauth2.Token, error) {
	tok := s.client.oauthToken()
	if tok.AccessToken != "" && (tok.Expiry.IsZero() || time.Until(tok.Expiry) > refreshSkew) {
		return tok, nil
	}
	if tok.RefreshToken == "" {
		return nil, apperrors.Unauthorized("no refresh token available")
	}

	pair, err := s.client.Refresh(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(accessTokenLifetime),
	}, nil
}

// Refresh exchanges the stored refresh token for a fresh access token and
// installs the result. The backend rotates refresh tokens, so the returned
// pair may carry a new refresh token as well.
func (c *Client) Refresh(ctx context.Context) (model.TokenPair, error) {
	current := c.Token()
	if current.Refresh == "" {
		return model.TokenPair{}, apperrors.Unauthorized("no refresh token available")
	}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	payload := map[string]string{"refresh": current.Refresh}
	if err := c.post(ctx, "/api/v1/auth/refresh/", payload, &resp); err != nil {
		return model.TokenPair{}, err
	}

	pair := model.TokenPair{Access: resp.Access, Refresh: resp.Refresh}
	if pair.Refresh == "" {
		pair.Refresh = current.Refresh
	}
	c.setTokenWithExpiry(pair, time.Now().Add(accessTokenLifetime))
	return pair, nil
}
