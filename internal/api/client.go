// Package api implements a typed client for the CollabHub REST API.
//
// The client owns the bearer token pair for its requests; the session
// cache pushes token changes into it through ports.BearerHolder. All
// endpoint paths are contract expectations on the external backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/collabhub/hubclient/internal/domain/model"
	apperrors "github.com/collabhub/hubclient/internal/errors"
	"github.com/collabhub/hubclient/internal/ports"
)

const (
	defaultTimeout = 15 * time.Second

	// maxErrorBody caps how much of an error response is read for diagnostics.
	maxErrorBody = 64 << 10
)

// Options groups construction parameters for Client.
type Options struct {
	// BaseURL is the deployment root, e.g. "http://localhost:8000".
	BaseURL string

	// HTTPClient overrides the transport; a default with a 15s timeout is used when nil.
	HTTPClient *http.Client

	// Logger receives request diagnostics; slog.Default() when nil.
	Logger *slog.Logger
}

// Client is a CollabHub API client. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	mu    sync.RWMutex
	token model.TokenPair
	// expiry tracks when the access token lapses, used by the refresh token source.
	expiry time.Time
}

var _ ports.SessionClient = (*Client)(nil)

// New constructs a Client.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid api base URL: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		http:    hc,
		logger:  logger,
	}, nil
}

// SetToken installs the token pair used for subsequent requests.
func (c *Client) SetToken(pair model.TokenPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = pair
}

// ClearToken removes the installed token pair.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = model.TokenPair{}
	c.expiry = time.Time{}
}

// Token returns the currently installed token pair.
func (c *Client) Token() model.TokenPair {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// setTokenWithExpiry records a freshly issued pair and its access expiry.
func (c *Client) setTokenWithExpiry(pair model.TokenPair, expiry time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = pair
	c.expiry = expiry
}

// do issues a JSON request and decodes a 2xx response into out (when non-nil).
// Non-2xx responses are mapped to structured errors; network failures are
// wrapped as transport errors.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed", "method", method, "path", path, "error", err)
		return apperrors.Transport(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.DebugContext(ctx, "close response body failed", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.DebugContext(ctx, "api request rejected",
			"method", method, "path", path, "status", resp.StatusCode)
		return apperrors.MapHTTPError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s %s response", method, path)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) patch(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPatch, path, payload, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// page is the DRF page-number pagination envelope.
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// getList fetches a collection endpoint, accepting either the pagination
// envelope or a bare JSON array (the backend mixes both shapes).
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode list %s", path)
		}
		return items, nil
	}

	var envelope page[T]
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode page %s", path)
	}
	return envelope.Results, nil
}
