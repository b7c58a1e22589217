package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/collabhub/hubclient/internal/domain/model"
)

// CreateStartup creates a startup listing for the current (founder) user.
func (c *Client) CreateStartup(ctx context.Context, req model.CreateStartupRequest) (model.Startup, error) {
	if err := req.Validate(); err != nil {
		return model.Startup{}, err
	}
	var out model.Startup
	if err := c.post(ctx, "/api/v1/startups/", req, &out); err != nil {
		return model.Startup{}, err
	}
	return out, nil
}

// GetStartup fetches one startup by id.
func (c *Client) GetStartup(ctx context.Context, id int64) (model.Startup, error) {
	var out model.Startup
	if err := c.get(ctx, fmt.Sprintf("/api/v1/startups/%d/", id), &out); err != nil {
		return model.Startup{}, err
	}
	return out, nil
}

// SearchStartups lists startups matching the given options.
func (c *Client) SearchStartups(ctx context.Context, opts model.StartupSearchOptions) ([]model.Startup, error) {
	query := url.Values{}
	if opts.Q != "" {
		query.Set("search", opts.Q)
	}
	if opts.Industry != "" {
		query.Set("industry", opts.Industry)
	}
	if opts.Stage != "" {
		query.Set("stage", string(opts.Stage))
	}
	if opts.Limit > 0 {
		query.Set("page_size", strconv.Itoa(opts.Limit))
	}

	path := "/api/v1/startups/"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return getList[model.Startup](ctx, c, path)
}

// PostStartupUpdate publishes a progress update on a startup page.
func (c *Client) PostStartupUpdate(ctx context.Context, startupID int64, title, content string) (model.StartupUpdate, error) {
	payload := map[string]string{"title": title, "content": content}
	var out model.StartupUpdate
	if err := c.post(ctx, fmt.Sprintf("/api/v1/startups/%d/updates/", startupID), payload, &out); err != nil {
		return model.StartupUpdate{}, err
	}
	return out, nil
}

// StartupUpdates lists the updates posted on a startup page.
func (c *Client) StartupUpdates(ctx context.Context, startupID int64) ([]model.StartupUpdate, error) {
	return getList[model.StartupUpdate](ctx, c, fmt.Sprintf("/api/v1/startups/%d/updates/", startupID))
}

// ExpressInterest records a talent's non-application interest in a startup.
func (c *Client) ExpressInterest(ctx context.Context, startupID int64, req model.ExpressInterestRequest) (model.Interest, error) {
	req.Normalize()
	var out model.Interest
	path := fmt.Sprintf("/api/v1/collaborations/startups/%d/interest/", startupID)
	if err := c.post(ctx, path, req, &out); err != nil {
		return model.Interest{}, err
	}
	return out, nil
}

// StartupInterests lists the interests recorded for a startup. Only the
// founder can read this collection.
func (c *Client) StartupInterests(ctx context.Context, startupID int64) ([]model.Interest, error) {
	path := fmt.Sprintf("/api/v1/collaborations/startups/%d/interests/", startupID)
	return getList[model.Interest](ctx, c, path)
}
