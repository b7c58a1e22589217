// Package mocks provides mock implementations for testing the session cache.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the session port interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	client := mocks.NewMockSessionClient(ctrl)
//	client.EXPECT().Me(gomock.Any()).Return(user, nil)
package mocks

// Generate mock for SessionClient interface from internal/ports package.
// This creates MockSessionClient with methods for all SessionClient interface methods:
// Me, Notifications, MarkNotificationRead, SetToken, ClearToken
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_client_mock.go github.com/collabhub/hubclient/internal/ports SessionClient

// Generate mock for TokenStore interface from internal/ports package.
// This creates MockTokenStore with methods for all TokenStore interface methods:
// Load, Save, Clear
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_store_mock.go github.com/collabhub/hubclient/internal/ports TokenStore

// Generate mock for Navigator interface from internal/ports package.
// This creates MockNavigator with methods for all Navigator interface methods:
// NavigateToLogin
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=navigator_mock.go github.com/collabhub/hubclient/internal/ports Navigator
