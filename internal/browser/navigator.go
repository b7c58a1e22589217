package browser

import (
	"context"

	"github.com/collabhub/hubclient/internal/ports"
)

// LoginNavigator sends a browser session to the app's login view. It is the
// navigation side effect the session cache triggers on logout or a rejected
// token.
type LoginNavigator struct {
	session   *Session
	loginPath string
}

var _ ports.Navigator = (*LoginNavigator)(nil)

// NewLoginNavigator wraps a session. loginPath defaults to /login.
func NewLoginNavigator(session *Session, loginPath string) *LoginNavigator {
	if loginPath == "" {
		loginPath = "/login"
	}
	return &LoginNavigator{session: session, loginPath: loginPath}
}

func (n *LoginNavigator) NavigateToLogin(ctx context.Context) error {
	return n.session.Navigate(ctx, n.loginPath)
}
