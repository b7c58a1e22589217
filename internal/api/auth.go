package api

import (
	"context"
	"time"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// RegisterRequest is the payload for POST /api/v1/auth/register/.
type RegisterRequest struct {
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Password2 string     `json:"password2,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Role      model.Role `json:"role,omitempty"`
}

// RegisterResult carries the created user and issued tokens.
type RegisterResult struct {
	User  model.User      `json:"user"`
	Pair  model.TokenPair `json:"-"`
	Extra string          `json:"message,omitempty"`
}

// Register creates an account and installs the issued token pair.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResult, error) {
	var resp struct {
		User   model.User `json:"user"`
		Tokens struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		} `json:"tokens"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/v1/auth/register/", req, &resp); err != nil {
		return RegisterResult{}, err
	}

	pair := model.TokenPair{Access: resp.Tokens.Access, Refresh: resp.Tokens.Refresh}
	c.setTokenWithExpiry(pair, time.Now().Add(accessTokenLifetime))

	return RegisterResult{User: resp.User, Pair: pair, Extra: resp.Message}, nil
}

// LoginResult carries the authenticated user and issued tokens.
type LoginResult struct {
	User model.User
	Pair model.TokenPair
}

// Login authenticates with email/password and installs the issued token pair.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var resp struct {
		Access  string     `json:"access"`
		Refresh string     `json:"refresh"`
		User    model.User `json:"user"`
	}
	payload := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/api/v1/auth/login/", payload, &resp); err != nil {
		return LoginResult{}, err
	}

	pair := model.TokenPair{Access: resp.Access, Refresh: resp.Refresh}
	c.setTokenWithExpiry(pair, time.Now().Add(accessTokenLifetime))

	return LoginResult{User: resp.User, Pair: pair}, nil
}

// Logout blacklists the refresh token server-side and clears the installed pair.
// The local pair is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	pair := c.Token()
	defer c.ClearToken()

	if pair.Refresh == "" {
		return nil
	}
	payload := map[string]string{"refresh": pair.Refresh}
	return c.post(ctx, "/api/v1/auth/logout/", payload, nil)
}
